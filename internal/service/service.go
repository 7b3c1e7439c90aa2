package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"

	"github.com/letsssgooo/quizMaster/internal/auth"
	"github.com/letsssgooo/quizMaster/internal/domain/models"
	"github.com/letsssgooo/quizMaster/internal/questions"
	"github.com/letsssgooo/quizMaster/internal/quiz"
	"github.com/letsssgooo/quizMaster/internal/stats"
	"github.com/letsssgooo/quizMaster/internal/storage/ledger"
	"github.com/letsssgooo/quizMaster/internal/storage/quizzes"
)

// ErrUnknownCategory is returned when a quiz is requested for a category outside the fixed set.
var ErrUnknownCategory = errors.New("unknown category")

// Deps — зависимости сервиса.
type Deps struct {
	Auth     *auth.Service
	Source   questions.Source
	Ledger   *ledger.Ledger
	Accounts stats.AccountStore
	Quizzes  *quizzes.Repo
	Settings quiz.Settings
}

// Service связывает авторизацию, источник вопросов, движок квиза и агрегатор статистики.
type Service struct {
	auth    *auth.Service
	source  questions.Source
	quizzes *quizzes.Repo
	agg     *stats.Aggregator
	engine  *quiz.Engine
	latest  atomic.Pointer[quiz.Snapshot]
	log     *slog.Logger
}

func New(deps Deps) *Service {
	s := &Service{
		auth:    deps.Auth,
		source:  deps.Source,
		quizzes: deps.Quizzes,
		agg:     stats.NewAggregator(deps.Accounts, deps.Ledger),
		log:     slog.Default().With("component", "service"),
	}

	s.engine = quiz.NewEngine(deps.Settings, deps.Ledger, quiz.WithRenderer(s), quiz.WithResultSink(s))

	return s
}

// Close останавливает таймеры движка.
func (s *Service) Close() {
	s.engine.Close()
}

// Render keeps the latest engine snapshot.
func (s *Service) Render(snap quiz.Snapshot) {
	s.latest.Store(&snap)
}

// OnFinished сохраняет результат, ставит флаг для дашборда и обновляет статистику.
func (s *Service) OnFinished(ctx context.Context, userID string, result *models.QuizResult) error {
	var errs []error

	if err := s.quizzes.SaveResult(ctx, result); err != nil {
		errs = append(errs, fmt.Errorf("%w: save result: %w", models.ErrPersistence, err))
	}

	if err := s.quizzes.MarkJustCompleted(ctx); err != nil {
		errs = append(errs, fmt.Errorf("%w: mark completed: %w", models.ErrPersistence, err))
	}

	if _, err := s.agg.Apply(ctx, userID, result); err != nil {
		errs = append(errs, err)
	}

	return errors.Join(errs...)
}

// Signup регистрирует пользователя. Квиз предыдущего пользователя прерывается.
func (s *Service) Signup(ctx context.Context, data auth.SignupData) (*models.UserAccount, error) {
	account, err := s.auth.Signup(ctx, data)
	if err != nil {
		return nil, err
	}

	s.quitRunning()

	return account, nil
}

// Login входит под другим пользователем. Квиз предыдущего пользователя прерывается.
func (s *Service) Login(ctx context.Context, email, password string) (*models.UserAccount, error) {
	account, err := s.auth.Login(ctx, email, password)
	if err != nil {
		return nil, err
	}

	s.quitRunning()

	return account, nil
}

// Logout прерывает текущий квиз и сбрасывает пользователя.
func (s *Service) Logout(ctx context.Context) error {
	s.quitRunning()

	return s.auth.Logout(ctx)
}

// quitRunning прерывает квиз, если он идет. Уже завершенный квиз не трогает.
func (s *Service) quitRunning() {
	err := s.engine.Quit()
	if err != nil && !errors.Is(err, models.ErrInvalidTransition) {
		s.log.Warn("can not quit running quiz", "error", err)
	}
}

func (s *Service) Me(ctx context.Context) (*models.UserAccount, error) {
	return s.auth.Current(ctx)
}

// StartQuiz загружает вопросы категории и запускает квиз для активного пользователя.
func (s *Service) StartQuiz(ctx context.Context, categoryKey string) (quiz.Snapshot, error) {
	user, err := s.auth.Current(ctx)
	if err != nil {
		return quiz.Snapshot{}, err
	}

	category, ok := models.ParseCategory(categoryKey)
	if !ok {
		return quiz.Snapshot{}, fmt.Errorf("%w: %q", ErrUnknownCategory, categoryKey)
	}

	pool, err := s.source.FetchQuestions(ctx, category)
	if err != nil {
		s.log.Error("can not load questions", "category", category, "error", err)
		return quiz.Snapshot{}, fmt.Errorf("%w: %w", models.ErrNoQuestionsAvailable, err)
	}

	err = s.engine.Start(ctx, quiz.StartRequest{UserID: user.ID, Category: category, Pool: pool})
	if err != nil {
		return quiz.Snapshot{}, err
	}

	return s.engine.Snapshot(), nil
}

// QuizState возвращает последний отрисованный снимок.
func (s *Service) QuizState() quiz.Snapshot {
	if snap := s.latest.Load(); snap != nil {
		return *snap
	}

	return s.engine.Snapshot()
}

func (s *Service) Answer(answer string) (quiz.Snapshot, error) {
	err := s.engine.SubmitAnswer(answer)
	return s.engine.Snapshot(), err
}

func (s *Service) Next() (quiz.Snapshot, error) {
	err := s.engine.Advance()
	return s.engine.Snapshot(), err
}

func (s *Service) Back() (quiz.Snapshot, error) {
	err := s.engine.GoBack()
	return s.engine.Snapshot(), err
}

func (s *Service) Quit() (quiz.Snapshot, error) {
	err := s.engine.Quit()
	return s.engine.Snapshot(), err
}

// Retry запускает квиз в категории последнего результата.
func (s *Service) Retry(ctx context.Context) (quiz.Snapshot, error) {
	last, err := s.quizzes.LastResult(ctx)
	if err != nil {
		return quiz.Snapshot{}, err
	}

	return s.StartQuiz(ctx, string(last.Category))
}

// Share возвращает текст для публикации последнего результата.
func (s *Service) Share(ctx context.Context) (string, error) {
	last, err := s.quizzes.LastResult(ctx)
	if err != nil {
		return "", err
	}

	return models.ShareText(last), nil
}

func (s *Service) Theme(ctx context.Context) (quizzes.Theme, error) {
	return s.quizzes.Theme(ctx)
}

// ToggleTheme переключает тему и возвращает новую.
func (s *Service) ToggleTheme(ctx context.Context) (quizzes.Theme, error) {
	theme, err := s.quizzes.Theme(ctx)
	if err != nil {
		return "", err
	}

	theme = theme.Toggled()
	if err = s.quizzes.SetTheme(ctx, theme); err != nil {
		return "", err
	}

	return theme, nil
}
