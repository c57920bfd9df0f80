package app

import (
	"context"
	"strings"
	"time"

	"github.com/hashicorp/go-multierror"
	"go.uber.org/zap"

	"trivia-quiz/internal/domain"
)

const (
	// DefaultBatchSize is how many questions one fetch asks for.
	DefaultBatchSize = 10
	// DefaultIdentityTTLDays is how long a username is remembered.
	DefaultIdentityTTLDays = 7
)

// SessionConfig tunes a Session. Zero values fall back to the defaults above.
type SessionConfig struct {
	BatchSize       int
	IdentityTTLDays int
	// RefetchAfterSubmit loads the next batch as soon as a submission is recorded.
	RefetchAfterSubmit bool
	Builder            *Builder
	Logger             *zap.Logger
	Now                func() time.Time
}

// Session is the explicit context of one page: who is playing, the ledger,
// and the batch currently rendered on the surface. It is not safe for
// concurrent use; each surface drives its own Session.
type Session struct {
	identity *IdentityStore
	ledger   *ScoreLedger
	source   QuestionSource
	surface  Surface
	builder  *Builder
	logger   *zap.Logger
	now      func() time.Time

	batchSize int
	ttlDays   int
	refetch   bool

	batch []domain.PresentedQuestion
}

func NewSession(identity *IdentityStore, ledger *ScoreLedger, source QuestionSource, surface Surface, cfg SessionConfig) *Session {
	s := &Session{
		identity:  identity,
		ledger:    ledger,
		source:    source,
		surface:   surface,
		builder:   cfg.Builder,
		logger:    cfg.Logger,
		now:       cfg.Now,
		batchSize: cfg.BatchSize,
		ttlDays:   cfg.IdentityTTLDays,
		refetch:   cfg.RefetchAfterSubmit,
	}
	if s.builder == nil {
		s.builder = NewBuilder(nil)
	}
	if s.logger == nil {
		s.logger = zap.NewNop()
	}
	if s.now == nil {
		s.now = time.Now
	}
	if s.batchSize <= 0 {
		s.batchSize = DefaultBatchSize
	}
	if s.ttlDays <= 0 {
		s.ttlDays = DefaultIdentityTTLDays
	}
	return s
}

// Start publishes the identity state, loads the first batch and shows the history.
// A failed fetch does not stop the history from being shown; both errors are returned.
func (s *Session) Start(ctx context.Context) error {
	s.publishIdentity(ctx)

	var result error
	if err := s.FetchQuestions(ctx); err != nil {
		result = multierror.Append(result, err)
	}
	if err := s.refreshScores(ctx); err != nil {
		result = multierror.Append(result, err)
	}
	return result
}

// State reports whether a player is remembered and under which name.
func (s *Session) State(ctx context.Context) (domain.PlayerState, string) {
	if identity, ok := s.identity.Get(ctx); ok {
		return domain.Identified, identity.Username
	}
	return domain.Anonymous, ""
}

// FetchQuestions replaces the rendered batch with a freshly fetched one.
// The loading indicator is released on every path; on failure the previous
// batch stays rendered.
func (s *Session) FetchQuestions(ctx context.Context) error {
	s.surface.SetLoading(true)
	defer s.surface.SetLoading(false)

	records, err := s.source.Fetch(ctx, s.batchSize)
	if err != nil {
		s.logger.Error("error fetching questions", zap.Error(err))
		return err
	}

	batch := s.builder.BuildBatch(records)
	if err := s.surface.Render(ctx, batch); err != nil {
		return err
	}
	s.batch = batch
	return nil
}

// Questions returns the batch currently rendered.
func (s *Session) Questions() []domain.PresentedQuestion {
	out := make([]domain.PresentedQuestion, len(s.batch))
	copy(out, s.batch)
	return out
}

// Submit grades the surface's selections and records the score.
// A remembered player keeps their stored name and username is ignored;
// an anonymous player must provide one and becomes identified.
func (s *Session) Submit(ctx context.Context, username string) (domain.ScoreEntry, error) {
	identity, identified := s.identity.Get(ctx)
	name := identity.Username
	if !identified {
		name = strings.TrimSpace(username)
		if name == "" {
			return domain.ScoreEntry{}, domain.ErrEmptyUsername
		}
	}

	selection, err := s.surface.ReadSelections(ctx)
	if err != nil {
		return domain.ScoreEntry{}, err
	}

	entry := domain.NewScoreEntry(name, Grade(s.batch, selection), s.now())
	if err := s.ledger.Append(ctx, entry); err != nil {
		return domain.ScoreEntry{}, err
	}

	if !identified {
		if err := s.identity.Set(ctx, name, s.ttlDays); err != nil {
			s.logger.Error("failed to remember player", zap.String("username", name), zap.Error(err))
		}
	}
	s.publishIdentity(ctx)

	if err := s.refreshScores(ctx); err != nil {
		s.logger.Error("failed to display scores", zap.Error(err))
	}
	if s.refetch {
		// the error is already logged and the previous batch stays usable
		_ = s.FetchQuestions(ctx)
	}
	return entry, nil
}

// NewPlayer forgets the stored identity and returns the surface to the anonymous state.
func (s *Session) NewPlayer(ctx context.Context) error {
	if err := s.identity.Clear(ctx); err != nil {
		return err
	}
	s.surface.ShowIdentity(domain.Anonymous, "")
	return nil
}

// Scores returns the full history, oldest first.
func (s *Session) Scores(ctx context.Context) ([]domain.ScoreEntry, error) {
	return s.ledger.List(ctx)
}

func (s *Session) publishIdentity(ctx context.Context) {
	state, username := s.State(ctx)
	s.surface.ShowIdentity(state, username)
}

func (s *Session) refreshScores(ctx context.Context) error {
	entries, err := s.ledger.List(ctx)
	if err != nil {
		return err
	}
	return s.surface.ShowScores(entries)
}
