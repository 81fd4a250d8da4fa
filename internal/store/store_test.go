// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package store

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/pdiddy/question-bank/internal/fallback"
	"github.com/pdiddy/question-bank/pkg/types"
)

// --- test helpers ---

func testStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewStore(types.StoreConfig{
		DBPath:     filepath.Join(t.TempDir(), "db", "questions.db"),
		MaxResults: 100,
	})
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func fullBank(t *testing.T) types.QuestionBank {
	t.Helper()
	qb := types.QuestionBank{Version: types.BankVersion}
	for _, kind := range types.TestKinds {
		qs, err := fallback.Questions(kind)
		if err != nil {
			t.Fatal(err)
		}
		qb = qb.WithQuestions(kind, qs)
	}
	return qb
}

// --- tests ---

func TestIngest(t *testing.T) {
	s := testStore(t)
	var log bytes.Buffer

	summary, err := s.Ingest(context.Background(), fullBank(t), &log)
	if err != nil {
		t.Fatalf("Ingest: %v", err)
	}
	if summary.Self != 40 || summary.Lover != 40 || summary.Total() != 80 {
		t.Errorf("summary = %+v, want 40/40", summary)
	}
	if !strings.Contains(log.String(), "indexed self-test: 40 questions") {
		t.Errorf("log output %q missing self-test line", log.String())
	}

	var options int
	if err := s.db.QueryRow(`SELECT count(*) FROM options`).Scan(&options); err != nil {
		t.Fatal(err)
	}
	if options != 10 {
		t.Errorf("options rows = %d, want 10", options)
	}
}

func TestIngest_ReplacesPreviousBank(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	if _, err := s.Ingest(ctx, fullBank(t), &bytes.Buffer{}); err != nil {
		t.Fatal(err)
	}

	q, _ := types.NewQuestion(1, "新的第一题", types.OptionFrequency)
	smaller := types.QuestionBank{Version: "V1.1", SelfTestQuestions: []types.Question{q}}
	if _, err := s.Ingest(ctx, smaller, &bytes.Buffer{}); err != nil {
		t.Fatal(err)
	}

	got, err := s.LoadBank(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if got.Version != "V1.1" {
		t.Errorf("version = %q, want V1.1", got.Version)
	}
	if len(got.SelfTestQuestions) != 1 || len(got.LoverTestQuestions) != 0 {
		t.Fatalf("got %d self / %d lover questions, want 1 / 0",
			len(got.SelfTestQuestions), len(got.LoverTestQuestions))
	}
	if got.SelfTestQuestions[0].QuestionContent != "新的第一题" {
		t.Errorf("content = %q", got.SelfTestQuestions[0].QuestionContent)
	}
}

func TestRetrieve(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()
	if _, err := s.Ingest(ctx, fullBank(t), &bytes.Buffer{}); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name    string
		opts    QueryOptions
		wantLen int
		wantIDs []int
	}{
		{
			name:    "no filters returns everything up to the limit",
			opts:    QueryOptions{},
			wantLen: 80,
		},
		{
			name:    "bank and dimension",
			opts:    QueryOptions{Kind: types.TestSelf, Dimension: types.DimensionControl},
			wantLen: 10,
		},
		{
			name:    "frequency items of the first dimension",
			opts:    QueryOptions{Kind: types.TestSelf, Dimension: types.DimensionControl, OptionType: types.OptionFrequency},
			wantIDs: []int{4, 7},
		},
		{
			name:    "content substring",
			opts:    QueryOptions{Kind: types.TestSelf, Query: "出轨"},
			wantIDs: []int{16},
		},
		{
			name:    "limit",
			opts:    QueryOptions{Kind: types.TestLover, MaxResults: 3},
			wantIDs: []int{1, 2, 3},
		},
		{
			name:    "no match",
			opts:    QueryOptions{Query: "不存在的内容"},
			wantLen: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			results, err := s.Retrieve(ctx, tt.opts)
			if err != nil {
				t.Fatalf("Retrieve: %v", err)
			}
			if tt.wantIDs != nil {
				var ids []int
				for _, r := range results {
					ids = append(ids, r.QuestionID)
				}
				if diff := cmp.Diff(tt.wantIDs, ids); diff != "" {
					t.Errorf("ids mismatch (-want +got):\n%s", diff)
				}
				return
			}
			if len(results) != tt.wantLen {
				t.Errorf("got %d results, want %d", len(results), tt.wantLen)
			}
		})
	}
}

func TestRetrieve_OrdersSelfBeforeLover(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()
	if _, err := s.Ingest(ctx, fullBank(t), &bytes.Buffer{}); err != nil {
		t.Fatal(err)
	}

	results, err := s.Retrieve(ctx, QueryOptions{Dimension: types.DimensionInsecurity})
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 20 {
		t.Fatalf("got %d results, want 20", len(results))
	}
	if results[0].Kind != types.TestSelf || results[0].QuestionID != 31 {
		t.Errorf("first = %s/%d, want self/31", results[0].Kind, results[0].QuestionID)
	}
	if results[10].Kind != types.TestLover || results[10].QuestionID != 31 {
		t.Errorf("eleventh = %s/%d, want lover/31", results[10].Kind, results[10].QuestionID)
	}
}

func TestLoadBank_RoundTrip(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()
	want := fullBank(t)
	if _, err := s.Ingest(ctx, want, &bytes.Buffer{}); err != nil {
		t.Fatal(err)
	}

	got, err := s.LoadBank(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("bank mismatch (-want +got):\n%s", diff)
	}
	if &got.SelfTestQuestions[0].Options[0] != &types.OptionAttitude.Options()[0] {
		t.Error("loaded question does not share the attitude option set")
	}
}

func TestLoadBank_Empty(t *testing.T) {
	s := testStore(t)
	if _, err := s.LoadBank(context.Background()); err == nil {
		t.Fatal("expected error for empty store")
	}
}
