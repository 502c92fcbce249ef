package quiz

import (
	"errors"
	"strings"
	"testing"

	"quizplay/internal/bank"
)

// TestPickAndRetract verifies the pool minus selection invariant.
func TestPickAndRetract(t *testing.T) {
	engine := newTestEngine(t, nil)
	selectTheme(t, engine, "Adjectifs")

	pool := engine.Snapshot().Interaction.Pool
	if len(pool) != 4 {
		t.Fatalf("expected 4 pool slots, got %d", len(pool))
	}
	for _, slot := range []int{2, 0, 3} {
		if err := engine.Pick(slot); err != nil {
			t.Fatalf("pick %d: %v", slot, err)
		}
	}
	if err := engine.Pick(0); !errors.Is(err, ErrInvalidSlot) {
		t.Fatalf("expected picked slot to be unavailable, got %v", err)
	}
	if err := engine.Pick(9); !errors.Is(err, ErrInvalidSlot) {
		t.Fatalf("expected out of range slot, got %v", err)
	}

	view := engine.Snapshot().Interaction
	want := []string{pool[2].Word, pool[0].Word, pool[3].Word}
	if strings.Join(view.Selection, " ") != strings.Join(want, " ") {
		t.Fatalf("expected selection %v, got %v", want, view.Selection)
	}
	if view.CanSubmit {
		t.Fatalf("expected partial selection to be unsubmittable")
	}

	if err := engine.Retract(1); err != nil {
		t.Fatalf("retract: %v", err)
	}
	view = engine.Snapshot().Interaction
	if view.Pool[0].Picked || !view.Pool[2].Picked || !view.Pool[3].Picked {
		t.Fatalf("expected slot 0 back in the pool, got %+v", view.Pool)
	}
	if err := engine.RetractLast(); err != nil {
		t.Fatalf("retract last: %v", err)
	}
	view = engine.Snapshot().Interaction
	if len(view.Selection) != 1 || view.Selection[0] != pool[2].Word {
		t.Fatalf("expected only the first pick left, got %v", view.Selection)
	}
}

// TestSelectionSubmitsCanonicalOrder verifies picking words in order scores.
func TestSelectionSubmitsCanonicalOrder(t *testing.T) {
	engine := newTestEngine(t, nil)
	selectTheme(t, engine, "Adjectifs")
	for _, word := range []string{"une", "jolie", "petite", "maison"} {
		if err := engine.PickWord(word); err != nil {
			t.Fatalf("pick %q: %v", word, err)
		}
	}
	if !engine.Snapshot().Interaction.CanSubmit {
		t.Fatalf("expected full selection to be submittable")
	}
	outcome, err := engine.SubmitSelection()
	if err != nil {
		t.Fatalf("submit selection: %v", err)
	}
	if !outcome.Correct {
		t.Fatalf("expected correct selection")
	}
	if err := engine.PickWord("une"); !errors.Is(err, ErrAlreadyAnswered) {
		t.Fatalf("expected pool to be locked after reveal, got %v", err)
	}
	if got := engine.Snapshot().Interaction.Submitted; len(got) != 4 {
		t.Fatalf("expected submitted words to be kept, got %v", got)
	}
}

// TestDuplicateWordsUseSeparateSlots verifies repeated words are picked
// independently.
func TestDuplicateWordsUseSeparateSlots(t *testing.T) {
	b, err := bank.New(bank.Theme{Name: "Doubles", Questions: []bank.Question{
		bank.AdjectiveOrder{Text: "q", Order: []string{"très", "très", "grand"}},
	}})
	if err != nil {
		t.Fatalf("build bank: %v", err)
	}
	engine := NewEngine(Options{Rand: NewRand(3)})
	engine.SetBank(b)
	selectTheme(t, engine, "Doubles")

	for _, word := range []string{"très", "très", "grand"} {
		if err := engine.PickWord(word); err != nil {
			t.Fatalf("pick %q: %v", word, err)
		}
	}
	if err := engine.PickWord("très"); !errors.Is(err, ErrInvalidSlot) {
		t.Fatalf("expected no third slot, got %v", err)
	}
	if err := engine.Retract(0); err != nil {
		t.Fatalf("retract: %v", err)
	}
	if err := engine.PickWord("très"); err != nil {
		t.Fatalf("expected retracted duplicate to be available again: %v", err)
	}
	outcome, err := engine.SubmitSelection()
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if outcome.Correct {
		t.Fatalf("expected reordered selection to be incorrect")
	}
}

// TestRetractLastOnEmptySelection verifies the empty guard.
func TestRetractLastOnEmptySelection(t *testing.T) {
	engine := newTestEngine(t, nil)
	selectTheme(t, engine, "Adjectifs")
	if err := engine.RetractLast(); !errors.Is(err, ErrInvalidSlot) {
		t.Fatalf("expected empty selection error, got %v", err)
	}
}

// TestRetractSlot verifies a picked slot is removed from the middle of the
// order and a free slot is rejected.
func TestRetractSlot(t *testing.T) {
	engine := newTestEngine(t, nil)
	selectTheme(t, engine, "Adjectifs")
	for slot := 0; slot < 3; slot++ {
		if err := engine.Pick(slot); err != nil {
			t.Fatalf("pick %d: %v", slot, err)
		}
	}
	pool := engine.Snapshot().Interaction.Pool
	if err := engine.RetractSlot(1); err != nil {
		t.Fatalf("retract slot: %v", err)
	}
	in := engine.Snapshot().Interaction
	want := []string{pool[0].Word, pool[2].Word}
	if len(in.Selection) != 2 || in.Selection[0] != want[0] || in.Selection[1] != want[1] {
		t.Fatalf("expected %v, got %v", want, in.Selection)
	}
	if in.Pool[1].Picked {
		t.Fatalf("expected slot 1 back in the pool")
	}
	if err := engine.RetractSlot(3); !errors.Is(err, ErrInvalidSlot) {
		t.Fatalf("expected free slot error, got %v", err)
	}
}

// TestPoolReshuffledOnEntry verifies each new question gets a fresh pool.
func TestPoolReshuffledOnEntry(t *testing.T) {
	engine := newTestEngine(t, nil)
	selectTheme(t, engine, "Mixte")
	for engine.Phase() == PhaseInQuestion {
		snap := engine.Snapshot()
		if q, ok := snap.Question.(bank.AdjectiveOrder); ok {
			if len(snap.Interaction.Pool) != len(q.Order) {
				t.Fatalf("expected pool for adjective question, got %+v", snap.Interaction.Pool)
			}
			if _, err := engine.SubmitOrder(q.Order); err != nil {
				t.Fatalf("submit: %v", err)
			}
		} else {
			if snap.Interaction.Pool != nil {
				t.Fatalf("expected no pool for %s question", snap.Question.Kind())
			}
			if _, err := engine.SubmitAnswer("a"); err != nil {
				t.Fatalf("submit: %v", err)
			}
		}
		if err := engine.Advance(); err != nil {
			t.Fatalf("advance: %v", err)
		}
	}
}
