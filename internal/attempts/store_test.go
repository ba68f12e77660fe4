package attempts_test

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/Sambhav234/Quiz-Generator/internal/attempts"
	"github.com/Sambhav234/Quiz-Generator/internal/db"
	"github.com/Sambhav234/Quiz-Generator/internal/quiz"

	_ "modernc.org/sqlite" // driver for "sqlite"
)

func sampleAttempts() []attempts.Attempt {
	return []attempts.Attempt{
		{
			ID: "a1", Subject: "guest-1", SourceType: "text",
			Score: 50, Correct: 1, Total: 2, CreatedAt: 100,
			Results: []quiz.AnswerResult{
				{Index: 0, Prompt: "True or False: Water boils.", Submitted: "true", CorrectAnswer: "true", Correct: true, Explanation: "Water boils."},
				{Index: 1, Prompt: "What is _____?", Submitted: "7", CorrectAnswer: "9", Correct: false, Explanation: "It is 9."},
			},
		},
		{
			ID: "a2", Subject: "guest-2", SourceType: "news", SourceID: "https://example.com/story",
			Score: 100, Correct: 1, Total: 1, CreatedAt: 200,
			Results: []quiz.AnswerResult{
				{Index: 0, Prompt: "True or False: Stocks rose.", Submitted: "true", CorrectAnswer: "true", Correct: true, Explanation: "Stocks rose."},
			},
		},
		{
			ID: "a3", Subject: "guest-1", SourceType: "paper", SourceID: "2101.00001v1",
			Score: 0, Correct: 0, Total: 1, CreatedAt: 300,
			Results: []quiz.AnswerResult{
				{Index: 0, Prompt: "What is _____?", Submitted: "", CorrectAnswer: "42", Correct: false, Explanation: "It is 42."},
			},
		},
	}
}

func runStoreTests(t *testing.T, store attempts.Store) {
	t.Helper()
	ctx := context.Background()

	for _, a := range sampleAttempts() {
		if err := store.Record(ctx, a); err != nil {
			t.Fatalf("Record(%s): %v", a.ID, err)
		}
	}

	got, err := store.Get(ctx, "a2")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if want := sampleAttempts()[1]; !reflect.DeepEqual(got, want) {
		t.Errorf("Get(a2) = %+v, want %+v", got, want)
	}

	if _, err := store.Get(ctx, "nope"); !errors.Is(err, attempts.ErrNotFound) {
		t.Errorf("Get(nope) err = %v, want ErrNotFound", err)
	}

	list, err := store.List(ctx, attempts.ListOpts{})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if want := []string{"a3", "a2", "a1"}; !sameIDs(list, want) {
		t.Errorf("List order = %v, want %v", ids(list), want)
	}

	list, err = store.List(ctx, attempts.ListOpts{Subject: "guest-1"})
	if err != nil {
		t.Fatalf("List(subject): %v", err)
	}
	if want := []string{"a3", "a1"}; !sameIDs(list, want) {
		t.Errorf("List(guest-1) = %v, want %v", ids(list), want)
	}

	list, err = store.List(ctx, attempts.ListOpts{Limit: 1, Offset: 1})
	if err != nil {
		t.Fatalf("List(page): %v", err)
	}
	if want := []string{"a2"}; !sameIDs(list, want) {
		t.Errorf("List(limit 1, offset 1) = %v, want %v", ids(list), want)
	}

	if err := store.Delete(ctx, "a2"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if err := store.Delete(ctx, "a2"); !errors.Is(err, attempts.ErrNotFound) {
		t.Errorf("second Delete err = %v, want ErrNotFound", err)
	}
	list, err = store.List(ctx, attempts.ListOpts{})
	if err != nil {
		t.Fatalf("List after delete: %v", err)
	}
	if want := []string{"a3", "a1"}; !sameIDs(list, want) {
		t.Errorf("List after delete = %v, want %v", ids(list), want)
	}

	if err := store.Purge(ctx); err != nil {
		t.Fatalf("Purge: %v", err)
	}
	list, err = store.List(ctx, attempts.ListOpts{})
	if err != nil {
		t.Fatalf("List after purge: %v", err)
	}
	if len(list) != 0 {
		t.Errorf("List after purge = %v, want empty", ids(list))
	}
}

func ids(list []attempts.Attempt) []string {
	out := make([]string, len(list))
	for i, a := range list {
		out[i] = a.ID
	}
	return out
}

func sameIDs(list []attempts.Attempt, want []string) bool {
	return reflect.DeepEqual(ids(list), want)
}

func TestInMemoryStore(t *testing.T) {
	runStoreTests(t, attempts.NewInMemoryStore())
}

func Test_SQLiteStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	conn, err := db.Open(ctx, db.DriverSQLite, "file:attemptstest.db?mode=memory&cache=shared")
	if err != nil {
		t.Fatal(err)
	}
	defer conn.Close()

	runStoreTests(t, attempts.NewSQLStore(conn, "sqlite"))
}
