package processor

import (
	"context"
	"fmt"
	"sync"

	"github.com/Bet-Zero/BetTracker-sub001/internal/contract"
	"github.com/Bet-Zero/BetTracker-sub001/internal/db"
	"github.com/Bet-Zero/BetTracker-sub001/internal/flatten"
	"github.com/Bet-Zero/BetTracker-sub001/internal/hub"
	"github.com/Bet-Zero/BetTracker-sub001/internal/publisher"
	"github.com/Bet-Zero/BetTracker-sub001/pkg/models"
)

// Processor orchestrates the import pipeline: contract validation, leg
// flattening, Holocron persistence, and live push. Both the stream consumer
// and the import API feed into the same Process call so a ticket behaves
// identically regardless of how it arrived.
type Processor struct {
	flattener *flatten.Flattener
	store     db.Store
	hub       *hub.Hub
	publisher *publisher.StreamPublisher

	// Metrics
	processedCount int64
	rejectedCount  int64
	errorCount     int64
	mu             sync.Mutex
}

// Result is the outcome of processing one bet
type Result struct {
	Report      contract.Report   `json:"report"`
	Rows        []models.FinalRow `json:"rows,omitempty"`
	Diagnostics []string          `json:"diagnostics,omitempty"`
	Stored      bool              `json:"stored"`
}

// NewProcessor creates a new processor
func NewProcessor(f *flatten.Flattener, store db.Store, h *hub.Hub, pub *publisher.StreamPublisher) *Processor {
	return &Processor{
		flattener: f,
		store:     store,
		hub:       h,
		publisher: pub,
	}
}

// Process runs one bet through the full pipeline. An invalid bet is routed
// to the rejected stream and never stored; a valid one is flattened, saved,
// and pushed to connected clients.
func (p *Processor) Process(ctx context.Context, bet models.Bet, source string) (*Result, error) {
	report := contract.Validate(bet)

	if !report.IsValid {
		p.incrementRejected()

		if p.publisher != nil {
			if err := p.publisher.PublishRejected(ctx, bet, report, source); err != nil {
				fmt.Printf("⚠️  Failed to publish rejected bet %s: %v\n", bet.BetID, err)
			}
		}

		return &Result{Report: report}, nil
	}

	rows, diagnostics := p.flattener.BetToRows(bet)
	for _, d := range diagnostics {
		fmt.Printf("⚠️  %s\n", d)
	}

	if err := p.store.SaveImport(ctx, bet, rows); err != nil {
		p.incrementErrors()
		return nil, fmt.Errorf("save import %s: %w", bet.BetID, err)
	}

	if p.hub != nil {
		p.hub.Broadcast(models.RowUpdate{
			BetID: bet.BetID,
			Book:  bet.Book,
			Sport: bet.Sport,
			Rows:  rows,
		})
	}

	p.incrementProcessed()

	return &Result{
		Report:      report,
		Rows:        rows,
		Diagnostics: diagnostics,
		Stored:      true,
	}, nil
}

// Validate runs the contract check only, without touching storage
func (p *Processor) Validate(bet models.Bet) contract.Report {
	return contract.Validate(bet)
}

// GetMetrics returns current processing metrics
func (p *Processor) GetMetrics() (processed, rejected, errors int64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.processedCount, p.rejectedCount, p.errorCount
}

func (p *Processor) incrementProcessed() {
	p.mu.Lock()
	p.processedCount++
	p.mu.Unlock()
}

func (p *Processor) incrementRejected() {
	p.mu.Lock()
	p.rejectedCount++
	p.mu.Unlock()
}

func (p *Processor) incrementErrors() {
	p.mu.Lock()
	p.errorCount++
	p.mu.Unlock()
}
