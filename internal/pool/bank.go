package pool

import (
	"context"
	"encoding/json"

	"go.uber.org/zap"

	"github.com/abhisek/nmt/internal/question"
	"github.com/abhisek/nmt/internal/store"
)

const bankSource = "question bank"

// BankSource serves the approved question-bank submissions.
type BankSource struct {
	Repo   store.SubmissionRepo
	Logger *zap.Logger
}

// NewBankSource returns a BankSource over repo.
func NewBankSource(repo store.SubmissionRepo, logger *zap.Logger) *BankSource {
	return &BankSource{Repo: repo, Logger: logger}
}

func (b *BankSource) Fetch(ctx context.Context) ([]question.Question, error) {
	records, err := b.Repo.Approved(ctx)
	if err != nil {
		return nil, unavailable(bankSource, err)
	}
	if len(records) == 0 {
		return nil, nil
	}
	data, err := json.Marshal(records)
	if err != nil {
		return nil, unavailable(bankSource, err)
	}
	return decode(bankSource, data, b.Logger)
}
