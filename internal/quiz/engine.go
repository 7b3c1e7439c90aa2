package quiz

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/letsssgooo/quizMaster/internal/domain/models"
	"github.com/letsssgooo/quizMaster/internal/questions"
	"github.com/letsssgooo/quizMaster/internal/storage/ledger"
)

// Engine ведет одну попытку квиза: выбор вопросов, таймеры, подсчет очков и серий.
// Все переходы выполняются под одним мьютексом.
type Engine struct {
	settings Settings
	ledger   UsedLedger
	renderer Renderer
	sink     ResultSink
	now      func() time.Time
	log      *slog.Logger

	mu       sync.Mutex
	status   Status
	userID   string
	session  *Session
	result   *models.QuizResult
	gen      uint64
	stopTick chan struct{}
	reveal   *time.Timer
}

// Option настраивает Engine.
type Option func(e *Engine)

func WithRenderer(r Renderer) Option {
	return func(e *Engine) { e.renderer = r }
}

func WithResultSink(s ResultSink) Option {
	return func(e *Engine) { e.sink = s }
}

func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

// NewEngine создаёт новый Engine. used может быть nil.
func NewEngine(settings Settings, used UsedLedger, opts ...Option) *Engine {
	e := &Engine{
		settings: settings.withDefaults(),
		ledger:   used,
		now:      time.Now,
		log:      slog.Default().With("component", "quiz"),
		status:   StatusIdle,
	}

	for _, opt := range opts {
		opt(e)
	}

	return e
}

// Start выбирает вопросы и запускает квиз.
// При пустом пуле возвращает models.ErrNoQuestionsAvailable, сессия не создаётся.
func (e *Engine) Start(ctx context.Context, req StartRequest) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.stopTimersLocked()
	e.session = nil
	e.result = nil
	e.status = StatusLoading
	e.userID = req.UserID

	selected := e.selectQuestions(ctx, req)
	if len(selected) == 0 {
		e.status = StatusIdle
		e.renderLocked()
		return models.ErrNoQuestionsAvailable
	}

	e.session = newSession(req.Category, selected, e.now())
	e.status = StatusInProgress

	e.log.Info("quiz started", "user", req.UserID, "category", req.Category, "questions", len(selected))

	e.showQuestionLocked(0, PhaseAwaitingAnswer)

	return nil
}

// selectQuestions excludes already served questions unless too few would remain.
func (e *Engine) selectQuestions(ctx context.Context, req StartRequest) []models.QuestionRecord {
	limit := e.settings.MaxQuestions

	if e.ledger == nil {
		return questions.ShuffleWithLimit(req.Pool, limit)
	}

	used, err := e.ledger.Used(ctx, req.UserID, req.Category)
	if err != nil {
		e.log.Warn("can not read used questions, serving the full pool", "error", err)
		return questions.ShuffleWithLimit(req.Pool, limit)
	}

	seen := ledger.Prompts(used)

	unseen := make([]models.QuestionRecord, 0, len(req.Pool))
	for _, q := range req.Pool {
		if _, ok := seen[q.Question]; !ok {
			unseen = append(unseen, q)
		}
	}

	if len(unseen) < limit {
		if len(used) > 0 {
			if err = e.ledger.Clear(ctx, req.UserID, req.Category); err != nil {
				e.log.Warn("can not clear used questions", "category", req.Category, "error", err)
			}
		}
		unseen = req.Pool
	}

	return questions.ShuffleWithLimit(unseen, limit)
}

// SubmitAnswer принимает ответ на текущий вопрос.
// Вне фазы awaiting_answer ничего не меняет и возвращает models.ErrInvalidTransition.
func (e *Engine) SubmitAnswer(answer string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.awaitingLocked() {
		return e.invalid("submit answer")
	}

	spent := int(math.Round(e.now().Sub(e.session.ShownAt).Seconds()))
	spent = min(max(spent, 0), e.questionSeconds())

	e.answerLocked(&answer, spent)

	return nil
}

// HandleTimeout засчитывает пропуск текущего вопроса.
func (e *Engine) HandleTimeout() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.awaitingLocked() {
		return e.invalid("timeout")
	}

	e.answerLocked(nil, e.questionSeconds())

	return nil
}

// Advance переходит к следующему вопросу или завершает квиз.
func (e *Engine) Advance() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.status != StatusInProgress {
		return e.invalid("advance")
	}

	switch e.session.Phase {
	case PhaseRevealing, PhaseReviewing:
		e.advanceLocked()
		return nil
	default:
		return e.invalid("advance")
	}
}

// GoBack показывает предыдущий вопрос без повторного подсчета.
func (e *Engine) GoBack() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.status != StatusInProgress || e.session.Phase == PhaseRevealing || e.session.CurrentIndex == 0 {
		return e.invalid("go back")
	}

	e.showQuestionLocked(e.session.CurrentIndex-1, PhaseReviewing)

	return nil
}

// Quit прерывает квиз. Результат не сохраняется.
func (e *Engine) Quit() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.status != StatusInProgress && e.status != StatusLoading {
		return e.invalid("quit")
	}

	e.stopTimersLocked()
	e.session = nil
	e.status = StatusQuit

	e.log.Info("quiz quit", "user", e.userID)
	e.renderLocked()

	return nil
}

// Close останавливает таймеры.
func (e *Engine) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.stopTimersLocked()
}

// Status возвращает текущий статус.
func (e *Engine) Status() Status {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.status
}

// Result возвращает результат последнего завершенного квиза.
func (e *Engine) Result() (*models.QuizResult, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.result, e.result != nil
}

// Snapshot возвращает текущее состояние для отрисовки.
func (e *Engine) Snapshot() Snapshot {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.snapshotLocked()
}

func (e *Engine) invalid(op string) error {
	phase := Phase("")
	if e.session != nil {
		phase = e.session.Phase
	}

	e.log.Debug("ignored transition", "op", op, "status", e.status, "phase", phase)

	return fmt.Errorf("%s in %s/%s: %w", op, e.status, phase, models.ErrInvalidTransition)
}

func (e *Engine) awaitingLocked() bool {
	return e.status == StatusInProgress && e.session.Phase == PhaseAwaitingAnswer
}

func (e *Engine) questionSeconds() int {
	return int(math.Round(e.settings.QuestionTime.Seconds()))
}

func (e *Engine) answerLocked(selected *string, spent int) {
	e.stopTimersLocked()

	s := e.session
	rec := s.record(selected, spent)

	s.Phase = PhaseRevealing
	s.Notice = ""
	switch {
	case selected == nil:
		s.Notice = NoticeTimeUp
	case rec.IsCorrect:
		s.Notice = StreakNotice(s.CurrentStreak)
	}

	gen := e.gen
	e.reveal = time.AfterFunc(e.settings.RevealPause, func() { e.afterReveal(gen) })

	e.renderLocked()
}

func (e *Engine) afterReveal(gen uint64) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if gen != e.gen || e.status != StatusInProgress || e.session.Phase != PhaseRevealing {
		return
	}

	e.advanceLocked()
}

func (e *Engine) advanceLocked() {
	s := e.session
	next := s.CurrentIndex + 1

	if next >= len(s.Questions) {
		e.finishLocked()
		return
	}

	phase := PhaseAwaitingAnswer
	if next < len(s.Answers) {
		phase = PhaseReviewing
	}

	e.showQuestionLocked(next, phase)
}

func (e *Engine) showQuestionLocked(idx int, phase Phase) {
	s := e.session
	s.CurrentIndex = idx
	s.Phase = phase
	s.ShownAt = e.now()
	s.TimeLeft = e.settings.QuestionTime
	s.Options = questions.Shuffle(s.Questions[idx].Options())
	s.Notice = ""

	e.startCountdownLocked()
	e.renderLocked()
}

func (e *Engine) finishLocked() {
	e.stopTimersLocked()

	s := e.session
	s.CurrentIndex = len(s.Questions)

	result := s.result(uuid.NewString(), e.now())

	e.result = result
	e.session = nil
	e.status = StatusFinished

	e.log.Info("quiz finished",
		"user", e.userID,
		"category", result.Category,
		"score", result.Score,
		"percentage", result.Percentage,
		"best_streak", result.BestStreak,
	)

	if e.sink != nil {
		if err := e.sink.OnFinished(context.Background(), e.userID, result); err != nil {
			e.log.Warn("can not save quiz result", "result", result.ID, "error", err)
		}
	}

	e.renderLocked()
}

// startCountdownLocked cancels running timers and starts a fresh countdown for the shown question.
func (e *Engine) startCountdownLocked() {
	e.stopTimersLocked()

	stop := make(chan struct{})
	e.stopTick = stop

	go e.countdown(e.gen, stop)
}

func (e *Engine) countdown(gen uint64, stop <-chan struct{}) {
	ticker := time.NewTicker(e.settings.TickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			if !e.tick(gen) {
				return
			}
		}
	}
}

// tick reports whether the countdown should keep running.
func (e *Engine) tick(gen uint64) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	if gen != e.gen || e.status != StatusInProgress {
		return false
	}

	s := e.session
	s.TimeLeft -= e.settings.TickInterval
	if s.TimeLeft > 0 {
		e.renderLocked()
		return true
	}

	s.TimeLeft = 0

	switch s.Phase {
	case PhaseAwaitingAnswer:
		e.answerLocked(nil, e.questionSeconds())
	case PhaseReviewing:
		e.advanceLocked()
	}

	return false
}

// stopTimersLocked invalidates every pending callback.
func (e *Engine) stopTimersLocked() {
	e.gen++

	if e.stopTick != nil {
		close(e.stopTick)
		e.stopTick = nil
	}

	if e.reveal != nil {
		e.reveal.Stop()
		e.reveal = nil
	}
}

func (e *Engine) snapshotLocked() Snapshot {
	snap := Snapshot{Status: e.status}

	if e.status == StatusFinished {
		snap.Result = e.result
	}

	s := e.session
	if s == nil {
		return snap
	}

	snap.Phase = s.Phase
	snap.Category = s.Category
	snap.CategoryName = models.DisplayName(string(s.Category))
	snap.Index = s.CurrentIndex
	snap.Total = len(s.Questions)
	snap.Score = s.Score
	snap.Streak = s.CurrentStreak
	snap.BestStreak = s.BestStreak
	snap.Answered = len(s.Answers)
	snap.TimeLeftSeconds = int(math.Ceil(s.TimeLeft.Seconds()))
	snap.Notice = s.Notice

	if s.CurrentIndex < len(s.Questions) {
		q := s.Questions[s.CurrentIndex]
		snap.Question = q.Question
		snap.Difficulty = q.Difficulty
		snap.Options = append([]string(nil), s.Options...)
	}

	if s.Phase != PhaseAwaitingAnswer {
		snap.Answer = s.answerAt(s.CurrentIndex)
	}

	return snap
}

func (e *Engine) renderLocked() {
	if e.renderer == nil {
		return
	}

	e.renderer.Render(e.snapshotLocked())
}
