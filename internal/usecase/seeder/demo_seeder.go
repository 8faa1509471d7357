package seeder

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/sp94dev/wallet-manager/internal/domain"
	"github.com/sp94dev/wallet-manager/internal/usecase/note"
)

// DemoInstruments are the instruments available on a fresh start
var DemoInstruments = []domain.Instrument{
	{Ticker: "AAPL", Currency: "USD", Market: "NASDAQ", Type: domain.InstrumentTypeStock},
	{Ticker: "GOOGL", Currency: "USD", Market: "NASDAQ", Type: domain.InstrumentTypeETF},
	{Ticker: "TSLA", Currency: "USD", Market: "NASDAQ", Type: domain.InstrumentTypeStock},
	{Ticker: "AMZN", Currency: "USD", Market: "NASDAQ", Type: domain.InstrumentTypeStock},
	{Ticker: "MSFT", Currency: "USD", Market: "NASDAQ", Type: domain.InstrumentTypeStock},
}

// DemoNote is a note to seed together with its comment texts
type DemoNote struct {
	Note     note.CreateNoteInput
	Comments []string
}

// DemoNotes are the notes available on a fresh start
var DemoNotes = []DemoNote{
	{
		Note:     note.CreateNoteInput{Title: "Shopping list", Content: "Milk, bread, eggs, butter", Author: "Jan"},
		Comments: []string{"Comment 1", "Comment 2"},
	},
	{
		Note: note.CreateNoteInput{Title: "Learning Spring", Content: "Master @RestController and @RequestParam", Author: "Anna"},
	},
	{
		Note: note.CreateNoteInput{Title: "Workout plan", Content: "Monday: chest, Wednesday: back, Friday: legs", Author: "Piotr"},
	},
}

// InstrumentSeedTarget is the part of the instrument service the seeder needs
type InstrumentSeedTarget interface {
	List(ctx context.Context, q domain.InstrumentQuery) ([]domain.Instrument, error)
	Create(ctx context.Context, input domain.Instrument) (*domain.Instrument, error)
}

// NoteSeedTarget is the part of the note service the seeder needs
type NoteSeedTarget interface {
	List(ctx context.Context, q domain.NoteQuery) ([]domain.Note, error)
	Create(ctx context.Context, input note.CreateNoteInput) (*domain.Note, error)
	AddComment(ctx context.Context, noteID int64, text string) (*domain.Comment, error)
}

// DemoSeeder populates the stores with demo records
type DemoSeeder struct {
	instruments InstrumentSeedTarget
	notes       NoteSeedTarget
}

// NewDemoSeeder creates a new DemoSeeder instance
func NewDemoSeeder(instruments InstrumentSeedTarget, notes NoteSeedTarget) *DemoSeeder {
	return &DemoSeeder{
		instruments: instruments,
		notes:       notes,
	}
}

// Seed creates every demo record that is not present yet.
// Instruments are matched by ticker and notes by title, so running it twice
// creates nothing the second time. Records go through the services, so their
// IDs come from the regular allocators.
func (s *DemoSeeder) Seed(ctx context.Context) error {
	if err := s.seedInstruments(ctx); err != nil {
		return err
	}
	return s.seedNotes(ctx)
}

func (s *DemoSeeder) seedInstruments(ctx context.Context) error {
	existing, err := s.instruments.List(ctx, domain.InstrumentQuery{})
	if err != nil {
		return fmt.Errorf("failed to list instruments: %w", err)
	}

	tickers := make(map[string]bool, len(existing))
	for _, i := range existing {
		tickers[strings.ToUpper(i.Ticker)] = true
	}

	for _, demo := range DemoInstruments {
		if tickers[strings.ToUpper(demo.Ticker)] {
			continue
		}
		if _, err := s.instruments.Create(ctx, demo); err != nil {
			return fmt.Errorf("failed to seed instrument %s: %w", demo.Ticker, err)
		}
	}

	return nil
}

func (s *DemoSeeder) seedNotes(ctx context.Context) error {
	existing, err := s.notes.List(ctx, domain.NoteQuery{Size: math.MaxInt32})
	if err != nil {
		return fmt.Errorf("failed to list notes: %w", err)
	}

	titles := make(map[string]bool, len(existing))
	for _, n := range existing {
		titles[n.Title] = true
	}

	for _, demo := range DemoNotes {
		if titles[demo.Note.Title] {
			continue
		}

		created, err := s.notes.Create(ctx, demo.Note)
		if err != nil {
			return fmt.Errorf("failed to seed note %q: %w", demo.Note.Title, err)
		}

		for _, text := range demo.Comments {
			if _, err := s.notes.AddComment(ctx, created.ID, text); err != nil {
				return fmt.Errorf("failed to seed comment on note %d: %w", created.ID, err)
			}
		}
	}

	return nil
}
