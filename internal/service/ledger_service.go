package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"connectrpc.com/connect"
	"golang.org/x/sync/errgroup"

	"github.com/mmynk/settleup/internal/calculator"
	"github.com/mmynk/settleup/internal/events"
	"github.com/mmynk/settleup/internal/history"
	"github.com/mmynk/settleup/internal/ledger"
	"github.com/mmynk/settleup/internal/metrics"
	"github.com/mmynk/settleup/internal/middleware"
	"github.com/mmynk/settleup/internal/models"
	"github.com/mmynk/settleup/internal/recorder"
	"github.com/mmynk/settleup/internal/scopelock"
	"github.com/mmynk/settleup/internal/storage"
	v1 "github.com/mmynk/settleup/pkg/api/settleupv1"
)

const defaultSummaryConcurrency = 4

// LedgerService implements the Connect LedgerService.
type LedgerService struct {
	store       storage.Store
	locker      scopelock.Locker
	recorder    *recorder.Recorder
	publisher   events.Publisher
	metrics     *metrics.Metrics
	logger      *slog.Logger
	concurrency int
}

// Option configures a LedgerService.
type Option func(*LedgerService)

// WithLocker sets how appends to one scope are serialized.
func WithLocker(l scopelock.Locker) Option {
	return func(s *LedgerService) { s.locker = l }
}

// WithRecorder replaces the id and clock source for new transactions.
func WithRecorder(r *recorder.Recorder) Option {
	return func(s *LedgerService) { s.recorder = r }
}

// WithPublisher sets where recorded transactions are announced.
func WithPublisher(p events.Publisher) Option {
	return func(s *LedgerService) { s.publisher = p }
}

// WithMetrics enables ledger metrics.
func WithMetrics(m *metrics.Metrics) Option {
	return func(s *LedgerService) { s.metrics = m }
}

// WithLogger replaces slog.Default() for the service's own log lines.
func WithLogger(logger *slog.Logger) Option {
	return func(s *LedgerService) { s.logger = logger }
}

// WithSummaryConcurrency bounds how many scopes ListScopes folds at once.
func WithSummaryConcurrency(n int) Option {
	return func(s *LedgerService) {
		if n > 0 {
			s.concurrency = n
		}
	}
}

// NewLedgerService creates a new LedgerService with the given storage backend.
// Without options it locks in process and publishes events to the log.
func NewLedgerService(store storage.Store, opts ...Option) *LedgerService {
	s := &LedgerService{
		store:       store,
		locker:      scopelock.NewKeyedMutex(),
		recorder:    recorder.New(),
		logger:      slog.Default(),
		concurrency: defaultSummaryConcurrency,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.publisher == nil {
		s.publisher = events.NewLogPublisher(s.logger)
	}
	return s
}

// CreateScope creates a group or event with its initial roster.
func (s *LedgerService) CreateScope(ctx context.Context, req *connect.Request[v1.CreateScopeRequest]) (*connect.Response[v1.CreateScopeResponse], error) {
	s.logger.Info("CreateScope request received",
		"name", req.Msg.Name,
		"kind", req.Msg.Kind,
		"members_count", len(req.Msg.Members),
	)

	scope := &models.Scope{
		Name:     strings.TrimSpace(req.Msg.Name),
		Kind:     models.ScopeKind(strings.ToLower(req.Msg.Kind)),
		Currency: strings.ToUpper(strings.TrimSpace(req.Msg.Currency)),
		Members:  fromAPIMembers(req.Msg.Members),
	}
	if scope.Name == "" {
		return nil, connect.NewError(connect.CodeInvalidArgument, ErrMissingName)
	}
	if scope.Kind == "" {
		scope.Kind = models.ScopeGroup
	}
	if !scope.Kind.Valid() {
		return nil, connect.NewError(connect.CodeInvalidArgument, fmt.Errorf("%w: %q", ErrInvalidKind, req.Msg.Kind))
	}

	if self := strings.TrimSpace(req.Msg.SelfMemberId); self != "" {
		if err := linkSelf(scope.Members, self, middleware.GetUserID(ctx)); err != nil {
			return nil, connect.NewError(connect.CodeInvalidArgument, err)
		}
	}

	// The roster goes through the same checks an append would see
	if _, err := ledger.New("", scope.Members); err != nil {
		s.logger.Warn("CreateScope rejected", "error", err)
		return nil, toConnectError(err)
	}
	if err := s.checkUsers(ctx, scope.Members); err != nil {
		return nil, toConnectError(err)
	}

	if err := s.store.CreateScope(ctx, scope); err != nil {
		s.logger.Error("CreateScope failed", "error", err)
		return nil, toConnectError(err)
	}

	s.logger.Info("Scope created", "scope_id", scope.ID, "kind", scope.Kind)

	return connect.NewResponse(&v1.CreateScopeResponse{Scope: toAPIScope(scope)}), nil
}

// linkSelf ties the member named self to the calling user.
func linkSelf(members []models.Member, self, userID string) error {
	for i := range members {
		if members[i].ID == self {
			if userID != "" {
				members[i].UserID = userID
			}
			return nil
		}
	}
	return fmt.Errorf("%w: %s", ErrSelfNotMember, self)
}

// checkUsers verifies that every linked user account exists.
func (s *LedgerService) checkUsers(ctx context.Context, members []models.Member) error {
	var ids []string
	for _, m := range members {
		if m.UserID != "" {
			ids = append(ids, m.UserID)
		}
	}
	if len(ids) == 0 {
		return nil
	}
	users, err := s.store.GetUsersByIDs(ctx, ids)
	if err != nil {
		return fmt.Errorf("failed to look up users: %w", err)
	}
	for _, id := range ids {
		if _, ok := users[id]; !ok {
			return fmt.Errorf("%w: %s", ErrUnknownUser, id)
		}
	}
	return nil
}

// GetScope retrieves a scope by ID.
func (s *LedgerService) GetScope(ctx context.Context, req *connect.Request[v1.GetScopeRequest]) (*connect.Response[v1.GetScopeResponse], error) {
	s.logger.Info("GetScope request received", "scope_id", req.Msg.ScopeId)

	if req.Msg.ScopeId == "" {
		return nil, connect.NewError(connect.CodeInvalidArgument, ErrMissingScopeID)
	}

	scope, err := s.store.GetScope(ctx, req.Msg.ScopeId)
	if err != nil {
		s.logger.Error("GetScope failed", "scope_id", req.Msg.ScopeId, "error", err)
		return nil, toConnectError(err)
	}

	return connect.NewResponse(&v1.GetScopeResponse{Scope: toAPIScope(scope)}), nil
}

// ListScopes returns the caller's scopes with their outstanding totals.
func (s *LedgerService) ListScopes(ctx context.Context, req *connect.Request[v1.ListScopesRequest]) (*connect.Response[v1.ListScopesResponse], error) {
	userID := middleware.GetUserID(ctx)
	s.logger.Info("ListScopes request received", "user_id", userID)

	scopes, err := s.store.ListScopes(ctx, userID)
	if err != nil {
		s.logger.Error("ListScopes failed", "error", err)
		return nil, toConnectError(err)
	}

	summaries := make([]*v1.ScopeSummary, len(scopes))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)
	for i, scope := range scopes {
		g.Go(func() error {
			summary, err := s.summarize(gctx, scope, userID)
			if err != nil {
				return fmt.Errorf("failed to summarize scope %s: %w", scope.ID, err)
			}
			summaries[i] = summary
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		s.logger.Error("ListScopes failed", "error", err)
		return nil, toConnectError(err)
	}

	s.logger.Info("ListScopes successful", "count", len(summaries))

	return connect.NewResponse(&v1.ListScopesResponse{Scopes: summaries}), nil
}

func (s *LedgerService) summarize(ctx context.Context, scope *models.Scope, userID string) (*v1.ScopeSummary, error) {
	l, err := s.store.LoadLedger(ctx, scope.ID)
	if err != nil {
		return nil, err
	}
	balances := calculator.ComputeBalances(l)
	plan, err := calculator.Plan(balances)
	if err != nil {
		return nil, err
	}

	summary := &v1.ScopeSummary{
		Scope:            toAPIScope(scope),
		TransactionCount: int32(l.Len()),
		Outstanding:      calculator.Outstanding(plan).String(),
	}
	if m, ok := scope.MemberForUser(userID); ok {
		summary.ViewerMemberId = m.ID
		summary.ViewerBalance = balances[m.ID].String()
	}
	return summary, nil
}

// AddMembers appends members to a scope's roster.
func (s *LedgerService) AddMembers(ctx context.Context, req *connect.Request[v1.AddMembersRequest]) (*connect.Response[v1.AddMembersResponse], error) {
	s.logger.Info("AddMembers request received",
		"scope_id", req.Msg.ScopeId,
		"members_count", len(req.Msg.Members),
	)

	if req.Msg.ScopeId == "" {
		return nil, connect.NewError(connect.CodeInvalidArgument, ErrMissingScopeID)
	}
	members := fromAPIMembers(req.Msg.Members)

	unlock, err := s.locker.Lock(ctx, req.Msg.ScopeId)
	if err != nil {
		return nil, toConnectError(fmt.Errorf("failed to lock scope: %w", err))
	}
	defer unlock()

	l, err := s.store.LoadLedger(ctx, req.Msg.ScopeId)
	if err != nil {
		s.logger.Error("AddMembers failed", "scope_id", req.Msg.ScopeId, "error", err)
		return nil, toConnectError(err)
	}
	if _, err := l.WithMembers(members...); err != nil {
		s.logger.Warn("AddMembers rejected", "scope_id", req.Msg.ScopeId, "error", err)
		return nil, toConnectError(err)
	}
	if err := s.checkUsers(ctx, members); err != nil {
		return nil, toConnectError(err)
	}

	if err := s.store.AddMembers(ctx, req.Msg.ScopeId, members); err != nil {
		s.logger.Error("AddMembers failed", "scope_id", req.Msg.ScopeId, "error", err)
		return nil, toConnectError(err)
	}

	scope, err := s.store.GetScope(ctx, req.Msg.ScopeId)
	if err != nil {
		s.logger.Error("Failed to fetch updated scope", "error", err)
		return nil, toConnectError(err)
	}

	s.logger.Info("Members added", "scope_id", scope.ID, "members_count", len(scope.Members))

	return connect.NewResponse(&v1.AddMembersResponse{Scope: toAPIScope(scope)}), nil
}

// GetBalances returns the scope's balances and tracked settlement plan.
func (s *LedgerService) GetBalances(ctx context.Context, req *connect.Request[v1.GetBalancesRequest]) (*connect.Response[v1.GetBalancesResponse], error) {
	s.logger.Info("GetBalances request received", "scope_id", req.Msg.ScopeId)

	if req.Msg.ScopeId == "" {
		return nil, connect.NewError(connect.CodeInvalidArgument, ErrMissingScopeID)
	}

	l, err := s.store.LoadLedger(ctx, req.Msg.ScopeId)
	if err != nil {
		s.logger.Error("GetBalances failed", "scope_id", req.Msg.ScopeId, "error", err)
		return nil, toConnectError(err)
	}

	standing, err := s.standing(ctx, l)
	if err != nil {
		s.logger.Error("GetBalances failed", "scope_id", req.Msg.ScopeId, "error", err)
		return nil, toConnectError(err)
	}

	return connect.NewResponse(&v1.GetBalancesResponse{Standing: standing}), nil
}

// standing recomputes balances and the plan from scratch for l.
func (s *LedgerService) standing(ctx context.Context, l *ledger.Ledger) (*v1.Standing, error) {
	plan, err := calculator.Plan(calculator.ComputeBalances(l))
	if err != nil {
		return nil, err
	}
	s.metrics.ObservePlan(len(plan))

	out := &v1.Standing{
		Balances:    toAPIBalances(l, calculator.Summarize(l)),
		Plan:        toAPIPlan(recorder.Track(l, plan)),
		Outstanding: calculator.Outstanding(plan).String(),
	}
	scope := models.Scope{Members: l.Members()}
	if m, ok := scope.MemberForUser(middleware.GetUserID(ctx)); ok {
		out.ViewerMemberId = m.ID
	}
	return out, nil
}

// GetMutualHistory lists the expenses that involve both members.
func (s *LedgerService) GetMutualHistory(ctx context.Context, req *connect.Request[v1.GetMutualHistoryRequest]) (*connect.Response[v1.GetMutualHistoryResponse], error) {
	s.logger.Info("GetMutualHistory request received",
		"scope_id", req.Msg.ScopeId,
		"member_a", req.Msg.MemberA,
		"member_b", req.Msg.MemberB,
	)

	if req.Msg.ScopeId == "" {
		return nil, connect.NewError(connect.CodeInvalidArgument, ErrMissingScopeID)
	}

	l, err := s.store.LoadLedger(ctx, req.Msg.ScopeId)
	if err != nil {
		s.logger.Error("GetMutualHistory failed", "scope_id", req.Msg.ScopeId, "error", err)
		return nil, toConnectError(err)
	}
	for _, id := range []string{req.Msg.MemberA, req.Msg.MemberB} {
		if !l.HasMember(id) {
			return nil, toConnectError(fmt.Errorf("%w: %q", ledger.ErrUnknownMember, id))
		}
	}

	txs := history.FindBetween(l, req.Msg.MemberA, req.Msg.MemberB)

	return connect.NewResponse(&v1.GetMutualHistoryResponse{Transactions: toAPITransactions(txs)}), nil
}

// ListTransactions pages through the scope's ledger in recorded order.
func (s *LedgerService) ListTransactions(ctx context.Context, req *connect.Request[v1.ListTransactionsRequest]) (*connect.Response[v1.ListTransactionsResponse], error) {
	s.logger.Info("ListTransactions request received",
		"scope_id", req.Msg.ScopeId,
		"limit", req.Msg.Limit,
		"offset", req.Msg.Offset,
	)

	if req.Msg.ScopeId == "" {
		return nil, connect.NewError(connect.CodeInvalidArgument, ErrMissingScopeID)
	}
	if req.Msg.Limit < 0 || req.Msg.Offset < 0 {
		return nil, connect.NewError(connect.CodeInvalidArgument, ErrInvalidPaging)
	}

	// Distinguish an unknown scope from an empty one
	if _, err := s.store.GetScope(ctx, req.Msg.ScopeId); err != nil {
		return nil, toConnectError(err)
	}

	txs, err := s.store.ListTransactions(ctx, req.Msg.ScopeId, int(req.Msg.Limit), int(req.Msg.Offset))
	if err != nil {
		s.logger.Error("ListTransactions failed", "scope_id", req.Msg.ScopeId, "error", err)
		return nil, toConnectError(err)
	}

	return connect.NewResponse(&v1.ListTransactionsResponse{Transactions: toAPITransactions(txs)}), nil
}
