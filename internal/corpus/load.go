package corpus

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"sync"

	"sentence-browser/internal/infra/logx"
)

// rawRecord mirrors one row of the merged corpus file. Every field is
// optional at this stage; rows with missing fields are dropped, not repaired.
// chapter and sentence_id are kept raw because the pipeline emits them either
// as JSON numbers or as numeric strings depending on the upstream stage.
type rawRecord struct {
	Chapter     json.RawMessage `json:"chapter"`
	Type        *string         `json:"type"`
	SentenceID  json.RawMessage `json:"sentence_id"`
	Text        *string         `json:"text"`
	Annotations *[]string       `json:"annotations"`
}

// Load reads the merged corpus file at path and returns the table of complete
// rows. Rows missing any of chapter, type, sentence_id, text or annotations
// are discarded. An annotations field that is present but empty is complete.
func Load(path string) (Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read corpus: %w", err)
	}

	var raws []rawRecord
	if err := json.Unmarshal(data, &raws); err != nil {
		return nil, fmt.Errorf("decode corpus %s: %w", path, err)
	}

	table := make(Table, 0, len(raws))
	dropped := 0
	for _, rr := range raws {
		rec, ok := complete(rr)
		if !ok {
			dropped++
			continue
		}
		table = append(table, rec)
	}
	if dropped > 0 {
		logx.Debugf("corpus: dropped %d incomplete rows of %d", dropped, len(raws))
	}
	return table, nil
}

// complete converts a raw row into a Record, reporting false when any
// required field is missing or malformed.
func complete(rr rawRecord) (Record, bool) {
	chapter, ok := asInt(rr.Chapter)
	if !ok {
		return Record{}, false
	}
	sentenceID, ok := asInt(rr.SentenceID)
	if !ok {
		return Record{}, false
	}
	if rr.Type == nil || rr.Text == nil || rr.Annotations == nil {
		return Record{}, false
	}
	return Record{
		Chapter:     chapter,
		Type:        *rr.Type,
		SentenceID:  sentenceID,
		Text:        *rr.Text,
		Annotations: *rr.Annotations,
	}, true
}

// asInt normalizes a raw JSON scalar to int, accepting both 3 and "3".
// Null, absent and non-numeric values report false.
func asInt(raw json.RawMessage) (int, bool) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return 0, false
	}
	s := string(raw)
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return n, true
}

// Store owns the once-only load of the corpus. Every call to Table returns
// the result of the first load, so repeated renders never re-read the file.
type Store struct {
	path  string
	once  sync.Once
	table Table
	err   error
}

func NewStore(path string) *Store {
	return &Store{path: path}
}

// Table returns the memoized corpus table, loading it on first use.
func (s *Store) Table() (Table, error) {
	s.once.Do(func() {
		s.table, s.err = Load(s.path)
	})
	return s.table, s.err
}

// Path returns the corpus file path the store reads from.
func (s *Store) Path() string { return s.path }
