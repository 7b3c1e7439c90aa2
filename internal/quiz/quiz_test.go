package quiz

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/letsssgooo/quizMaster/internal/domain/models"
	"github.com/letsssgooo/quizMaster/internal/storage"
	"github.com/letsssgooo/quizMaster/internal/storage/ledger"
)

// manualSettings отключает таймеры на время теста: все переходы делаются вручную.
func manualSettings() Settings {
	return Settings{
		QuestionTime: time.Hour,
		TickInterval: time.Hour,
		RevealPause:  time.Hour,
		MaxQuestions: 20,
	}
}

func makePool(n int) []models.QuestionRecord {
	pool := make([]models.QuestionRecord, 0, n)
	for i := range n {
		pool = append(pool, models.QuestionRecord{
			Question:         fmt.Sprintf("Q%d", i+1),
			CorrectAnswer:    fmt.Sprintf("right%d", i+1),
			IncorrectAnswers: []string{"w1", "w2", "w3"},
			Difficulty:       "easy",
		})
	}

	return pool
}

// recorder собирает все снимки, отправленные движком.
type recorder struct {
	mu    sync.Mutex
	snaps []Snapshot
}

func (r *recorder) Render(s Snapshot) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.snaps = append(r.snaps, s)
}

func (r *recorder) all() []Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]Snapshot(nil), r.snaps...)
}

func (r *recorder) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.snaps)
}

type sinkFunc func(ctx context.Context, userID string, result *models.QuizResult) error

func (f sinkFunc) OnFinished(ctx context.Context, userID string, result *models.QuizResult) error {
	return f(ctx, userID, result)
}

// captureSink запоминает последний результат.
type captureSink struct {
	mu     sync.Mutex
	calls  int
	userID string
	result *models.QuizResult
	err    error
}

func (c *captureSink) OnFinished(_ context.Context, userID string, result *models.QuizResult) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.calls++
	c.userID = userID
	c.result = result

	return c.err
}

func (c *captureSink) get() (int, *models.QuizResult) {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.calls, c.result
}

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.now
}

func (c *fakeClock) Add(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.now = c.now.Add(d)
}

// answerCurrent отвечает на текущий вопрос правильно или неправильно.
func answerCurrent(t *testing.T, e *Engine, pool []models.QuestionRecord, correct bool) {
	t.Helper()

	snap := e.Snapshot()
	require.Equal(t, PhaseAwaitingAnswer, snap.Phase)

	answer := "definitely wrong"
	if correct {
		for _, q := range pool {
			if q.Question == snap.Question {
				answer = q.CorrectAnswer
			}
		}
	}

	require.NoError(t, e.SubmitAnswer(answer))
}

func TestStart_EmptyPool(t *testing.T) {
	rec := &recorder{}
	engine := NewEngine(manualSettings(), nil, WithRenderer(rec))
	defer engine.Close()

	err := engine.Start(context.Background(), StartRequest{UserID: "u1", Category: models.CategoryCoding})
	assert.ErrorIs(t, err, models.ErrNoQuestionsAvailable)
	assert.Equal(t, StatusIdle, engine.Status())

	// Отвечать не на что
	err = engine.SubmitAnswer("x")
	assert.ErrorIs(t, err, models.ErrInvalidTransition)
}

func TestStart_SelectsWholeSmallPool(t *testing.T) {
	ctx := context.Background()
	used := ledger.New(storage.NewMemoryStorage())
	engine := NewEngine(manualSettings(), used)
	defer engine.Close()

	pool := makePool(10)

	err := engine.Start(ctx, StartRequest{UserID: "u1", Category: models.CategoryGeneral, Pool: pool})
	require.NoError(t, err)

	snap := engine.Snapshot()
	assert.Equal(t, StatusInProgress, snap.Status)
	assert.Equal(t, PhaseAwaitingAnswer, snap.Phase)
	assert.Equal(t, 10, snap.Total)
	assert.Equal(t, 0, snap.Index)
	assert.Equal(t, 0, snap.Score)
	assert.Equal(t, "General Knowledge", snap.CategoryName)

	// Пройдем все вопросы и соберем их тексты
	seen := make([]string, 0, 10)
	for range 10 {
		seen = append(seen, engine.Snapshot().Question)
		answerCurrent(t, engine, pool, true)
		require.NoError(t, engine.Advance())
	}

	want := make([]string, 0, 10)
	for _, q := range pool {
		want = append(want, q.Question)
	}
	assert.ElementsMatch(t, want, seen)
	assert.Equal(t, StatusFinished, engine.Status())
}

func TestStart_LimitsAndExcludesUsed(t *testing.T) {
	ctx := context.Background()
	used := ledger.New(storage.NewMemoryStorage())
	engine := NewEngine(manualSettings(), used)
	defer engine.Close()

	pool := makePool(30)

	served := []models.UsedQuestion{
		{Question: "Q1", CorrectAnswer: "right1"},
		{Question: "Q2", CorrectAnswer: "right2"},
		{Question: "Q3", CorrectAnswer: "right3"},
	}
	require.NoError(t, used.Append(ctx, "u1", models.CategoryCoding, served))

	require.NoError(t, engine.Start(ctx, StartRequest{UserID: "u1", Category: models.CategoryCoding, Pool: pool}))

	engine.mu.Lock()
	selected := append([]models.QuestionRecord(nil), engine.session.Questions...)
	engine.mu.Unlock()

	require.Len(t, selected, 20)
	for _, q := range selected {
		assert.NotContains(t, []string{"Q1", "Q2", "Q3"}, q.Question)
	}

	// 27 непоказанных вопросов, журнал не сбрасывается
	left, err := used.Used(ctx, "u1", models.CategoryCoding)
	require.NoError(t, err)
	assert.Len(t, left, 3)
}

func TestStart_ResetsLedgerWhenPoolRunsLow(t *testing.T) {
	ctx := context.Background()
	used := ledger.New(storage.NewMemoryStorage())
	engine := NewEngine(manualSettings(), used)
	defer engine.Close()

	pool := makePool(10)

	// Из 10 вопросов 5 уже были, осталось 5 < 20
	served := make([]models.UsedQuestion, 0, 5)
	for _, q := range pool[:5] {
		served = append(served, models.UsedQuestion{Question: q.Question, CorrectAnswer: q.CorrectAnswer})
	}
	require.NoError(t, used.Append(ctx, "u1", models.CategoryAptitude, served))

	// Журнал другой категории не трогаем
	require.NoError(t, used.Append(ctx, "u1", models.CategoryCoding, served))

	require.NoError(t, engine.Start(ctx, StartRequest{UserID: "u1", Category: models.CategoryAptitude, Pool: pool}))
	assert.Equal(t, 10, engine.Snapshot().Total)

	left, err := used.Used(ctx, "u1", models.CategoryAptitude)
	require.NoError(t, err)
	assert.Empty(t, left)

	other, err := used.Used(ctx, "u1", models.CategoryCoding)
	require.NoError(t, err)
	assert.Len(t, other, 5)
}

func TestQuizFlow_AllCorrect(t *testing.T) {
	sink := &captureSink{}
	clock := newFakeClock()
	engine := NewEngine(manualSettings(), nil, WithResultSink(sink), WithClock(clock.Now))
	defer engine.Close()

	pool := makePool(25)

	require.NoError(t, engine.Start(context.Background(), StartRequest{UserID: "u1", Category: models.CategoryCoding, Pool: pool}))

	for i := range 20 {
		clock.Add(4 * time.Second)
		answerCurrent(t, engine, pool, true)

		snap := engine.Snapshot()
		assert.Equal(t, PhaseRevealing, snap.Phase)
		assert.Equal(t, i+1, snap.Streak)
		require.NotNil(t, snap.Answer)
		assert.True(t, snap.Answer.IsCorrect)
		assert.Equal(t, 4, snap.Answer.TimeSpentSeconds)

		require.NoError(t, engine.Advance())
	}

	calls, result := sink.get()
	require.Equal(t, 1, calls)
	require.NotNil(t, result)

	assert.NotEmpty(t, result.ID)
	assert.Equal(t, models.CategoryCoding, result.Category)
	assert.Equal(t, 40, result.Score)
	assert.Equal(t, 20, result.CorrectAnswers)
	assert.Equal(t, 0, result.WrongAnswers)
	assert.Equal(t, 20, result.TotalQuestions)
	assert.Equal(t, 100, result.Percentage)
	assert.Equal(t, 20, result.BestStreak)
	assert.Equal(t, 20, result.EndingStreak)
	assert.Equal(t, 80, result.TotalTimeSeconds)
	assert.Equal(t, 4, result.AvgTimePerQuestion)
	assert.Len(t, result.Answers, 20)

	for i, a := range result.Answers {
		assert.Equal(t, i, a.QuestionIndex)
	}

	snap := engine.Snapshot()
	assert.Equal(t, StatusFinished, snap.Status)
	assert.Equal(t, result, snap.Result)

	stored, ok := engine.Result()
	require.True(t, ok)
	assert.Equal(t, result.ID, stored.ID)
}

func TestQuizFlow_StreakBrokenInTheMiddle(t *testing.T) {
	sink := &captureSink{}
	engine := NewEngine(manualSettings(), nil, WithResultSink(sink))
	defer engine.Close()

	pool := makePool(14)

	require.NoError(t, engine.Start(context.Background(), StartRequest{UserID: "u1", Category: models.CategoryGeneral, Pool: pool}))

	// 1-5 верно, 6 неверно, 7-14 верно
	for i := range 14 {
		answerCurrent(t, engine, pool, i != 5)
		require.NoError(t, engine.Advance())
	}

	_, result := sink.get()
	require.NotNil(t, result)

	assert.Equal(t, 26, result.Score)
	assert.Equal(t, 13, result.CorrectAnswers)
	assert.Equal(t, 1, result.WrongAnswers)
	assert.Equal(t, 8, result.BestStreak)
	assert.Equal(t, 8, result.EndingStreak)
	assert.Equal(t, 93, result.Percentage)
}

func TestQuizFlow_TrailingWrongKeepsBestStreak(t *testing.T) {
	sink := &captureSink{}
	engine := NewEngine(manualSettings(), nil, WithResultSink(sink))
	defer engine.Close()

	pool := makePool(4)

	require.NoError(t, engine.Start(context.Background(), StartRequest{UserID: "u1", Category: models.CategoryGeneral, Pool: pool}))

	for i := range 4 {
		answerCurrent(t, engine, pool, i < 3)
		require.NoError(t, engine.Advance())
	}

	_, result := sink.get()
	require.NotNil(t, result)
	assert.Equal(t, 3, result.BestStreak)
	assert.Equal(t, 0, result.EndingStreak)
	assert.Equal(t, 75, result.Percentage)
}

func TestQuizFlow_Invariants(t *testing.T) {
	rec := &recorder{}
	engine := NewEngine(manualSettings(), nil, WithRenderer(rec))
	defer engine.Close()

	pool := makePool(20)
	pattern := []bool{true, true, false, true, true, true, false, false, true, true,
		true, true, true, false, true, false, true, true, true, true}

	require.NoError(t, engine.Start(context.Background(), StartRequest{UserID: "u1", Category: models.CategoryCoding, Pool: pool}))

	for _, ok := range pattern {
		answerCurrent(t, engine, pool, ok)
		require.NoError(t, engine.Advance())
	}

	prevBest := 0
	run, maxRun := 0, 0
	for _, ok := range pattern {
		if ok {
			run++
		} else {
			run = 0
		}
		maxRun = max(maxRun, run)
	}

	for _, snap := range rec.all() {
		if snap.Status != StatusInProgress {
			continue
		}

		assert.GreaterOrEqual(t, snap.BestStreak, prevBest)
		assert.GreaterOrEqual(t, snap.BestStreak, snap.Streak)
		assert.LessOrEqual(t, snap.Answered, snap.Total)
		assert.GreaterOrEqual(t, snap.Index, 0)
		assert.LessOrEqual(t, snap.Index, snap.Total)
		prevBest = snap.BestStreak
	}

	result, ok := engine.Result()
	require.True(t, ok)
	assert.Equal(t, 2*result.CorrectAnswers, result.Score)
	assert.Equal(t, len(result.Answers), result.CorrectAnswers+result.WrongAnswers)
	assert.Equal(t, maxRun, result.BestStreak)

	for _, a := range result.Answers {
		require.NotNil(t, a.SelectedAnswer)
		assert.Equal(t, *a.SelectedAnswer == a.CorrectAnswer, a.IsCorrect)
	}
}

func TestSubmitAnswer_IgnoredWhileRevealing(t *testing.T) {
	engine := NewEngine(manualSettings(), nil)
	defer engine.Close()

	pool := makePool(3)

	require.NoError(t, engine.Start(context.Background(), StartRequest{UserID: "u1", Category: models.CategoryGeneral, Pool: pool}))

	answerCurrent(t, engine, pool, true)

	// Повторный клик и таймаут во время паузы ничего не меняют
	err := engine.SubmitAnswer("anything")
	assert.ErrorIs(t, err, models.ErrInvalidTransition)

	err = engine.HandleTimeout()
	assert.ErrorIs(t, err, models.ErrInvalidTransition)

	snap := engine.Snapshot()
	assert.Equal(t, 2, snap.Score)
	assert.Equal(t, 1, snap.Answered)
	assert.Equal(t, 1, snap.Streak)
}

func TestHandleTimeout(t *testing.T) {
	engine := NewEngine(DefaultSettings(), nil)
	defer engine.Close()

	pool := makePool(2)

	require.NoError(t, engine.Start(context.Background(), StartRequest{UserID: "u1", Category: models.CategoryGeneral, Pool: pool}))

	answerCurrent(t, engine, pool, true)
	require.NoError(t, engine.Advance())

	require.NoError(t, engine.HandleTimeout())

	snap := engine.Snapshot()
	assert.Equal(t, PhaseRevealing, snap.Phase)
	assert.Equal(t, 0, snap.Streak)
	assert.Equal(t, 1, snap.BestStreak)
	assert.Equal(t, 2, snap.Score)
	assert.Equal(t, NoticeTimeUp, snap.Notice)

	require.NotNil(t, snap.Answer)
	assert.Nil(t, snap.Answer.SelectedAnswer)
	assert.False(t, snap.Answer.IsCorrect)
	assert.Equal(t, 30, snap.Answer.TimeSpentSeconds)
}

func TestTimers_CountdownExpires(t *testing.T) {
	rec := &recorder{}
	settings := Settings{
		QuestionTime: 50 * time.Millisecond,
		TickInterval: 10 * time.Millisecond,
		RevealPause:  time.Hour,
		MaxQuestions: 20,
	}
	engine := NewEngine(settings, nil, WithRenderer(rec))
	defer engine.Close()

	require.NoError(t, engine.Start(context.Background(), StartRequest{UserID: "u1", Category: models.CategoryGeneral, Pool: makePool(2)}))

	require.Eventually(t, func() bool {
		return engine.Snapshot().Phase == PhaseRevealing
	}, 2*time.Second, 5*time.Millisecond)

	snap := engine.Snapshot()
	require.NotNil(t, snap.Answer)
	assert.Nil(t, snap.Answer.SelectedAnswer)
	assert.Equal(t, 0, snap.TimeLeftSeconds)
	assert.Equal(t, 1, snap.Answered)

	// Во время отсчета были промежуточные снимки
	ticks := 0
	for _, s := range rec.all() {
		if s.Phase == PhaseAwaitingAnswer && s.Index == 0 {
			ticks++
		}
	}
	assert.Greater(t, ticks, 1)
}

func TestTimers_RevealAutoAdvances(t *testing.T) {
	settings := manualSettings()
	settings.RevealPause = 20 * time.Millisecond

	sink := &captureSink{}
	engine := NewEngine(settings, nil, WithResultSink(sink))
	defer engine.Close()

	pool := makePool(2)

	require.NoError(t, engine.Start(context.Background(), StartRequest{UserID: "u1", Category: models.CategoryGeneral, Pool: pool}))

	answerCurrent(t, engine, pool, true)

	require.Eventually(t, func() bool {
		snap := engine.Snapshot()
		return snap.Index == 1 && snap.Phase == PhaseAwaitingAnswer
	}, 2*time.Second, 5*time.Millisecond)

	answerCurrent(t, engine, pool, false)

	require.Eventually(t, func() bool {
		return engine.Status() == StatusFinished
	}, 2*time.Second, 5*time.Millisecond)

	calls, result := sink.get()
	assert.Equal(t, 1, calls)
	assert.Equal(t, 50, result.Percentage)
}

func TestAdvance_CancelsPendingReveal(t *testing.T) {
	settings := manualSettings()
	settings.RevealPause = 30 * time.Millisecond

	engine := NewEngine(settings, nil)
	defer engine.Close()

	pool := makePool(3)

	require.NoError(t, engine.Start(context.Background(), StartRequest{UserID: "u1", Category: models.CategoryGeneral, Pool: pool}))

	answerCurrent(t, engine, pool, true)
	require.NoError(t, engine.Advance())
	assert.Equal(t, 1, engine.Snapshot().Index)

	// Отложенный переход не должен перескочить второй вопрос
	time.Sleep(100 * time.Millisecond)

	snap := engine.Snapshot()
	assert.Equal(t, 1, snap.Index)
	assert.Equal(t, PhaseAwaitingAnswer, snap.Phase)
}

func TestGoBack_ReviewsWithoutRescoring(t *testing.T) {
	engine := NewEngine(manualSettings(), nil)
	defer engine.Close()

	pool := makePool(3)

	require.NoError(t, engine.Start(context.Background(), StartRequest{UserID: "u1", Category: models.CategoryGeneral, Pool: pool}))

	err := engine.GoBack()
	assert.ErrorIs(t, err, models.ErrInvalidTransition)

	first := engine.Snapshot().Question
	answerCurrent(t, engine, pool, true)

	// Во время паузы назад нельзя
	err = engine.GoBack()
	assert.ErrorIs(t, err, models.ErrInvalidTransition)

	require.NoError(t, engine.Advance())
	answerCurrent(t, engine, pool, false)
	require.NoError(t, engine.Advance())

	require.NoError(t, engine.GoBack())
	require.NoError(t, engine.GoBack())

	snap := engine.Snapshot()
	assert.Equal(t, PhaseReviewing, snap.Phase)
	assert.Equal(t, 0, snap.Index)
	assert.Equal(t, first, snap.Question)
	assert.Equal(t, 2, snap.Answered)
	assert.Equal(t, 2, snap.Score)
	require.NotNil(t, snap.Answer)
	assert.True(t, snap.Answer.IsCorrect)

	err = engine.SubmitAnswer(snap.Answer.CorrectAnswer)
	assert.ErrorIs(t, err, models.ErrInvalidTransition)

	require.NoError(t, engine.Advance())
	snap = engine.Snapshot()
	assert.Equal(t, 1, snap.Index)
	assert.Equal(t, PhaseReviewing, snap.Phase)

	require.NoError(t, engine.Advance())
	snap = engine.Snapshot()
	assert.Equal(t, 2, snap.Index)
	assert.Equal(t, PhaseAwaitingAnswer, snap.Phase)
	assert.Equal(t, 2, snap.Answered)
	assert.Equal(t, 2, snap.Score)
}

func TestGoBack_ReviewTimerAdvancesWithoutRecording(t *testing.T) {
	rec := &recorder{}
	settings := Settings{
		QuestionTime: 60 * time.Millisecond,
		TickInterval: 10 * time.Millisecond,
		RevealPause:  time.Hour,
		MaxQuestions: 20,
	}
	engine := NewEngine(settings, nil, WithRenderer(rec))
	defer engine.Close()

	pool := makePool(3)

	require.NoError(t, engine.Start(context.Background(), StartRequest{UserID: "u1", Category: models.CategoryGeneral, Pool: pool}))

	answerCurrent(t, engine, pool, true)
	require.NoError(t, engine.Advance())
	require.NoError(t, engine.GoBack())

	require.Eventually(t, func() bool {
		reviewed := false
		for _, s := range rec.all() {
			if s.Phase == PhaseReviewing {
				reviewed = true
				continue
			}
			if reviewed && s.Index == 1 && s.Phase == PhaseAwaitingAnswer && s.Answered == 1 {
				return true
			}
		}
		return false
	}, 2*time.Second, 5*time.Millisecond)

	// Пока шел просмотр, ответов не добавилось
	for _, s := range rec.all() {
		if s.Phase == PhaseReviewing {
			assert.Equal(t, 1, s.Answered)
		}
	}
}

func TestQuit_StopsTimersAndDropsSession(t *testing.T) {
	rec := &recorder{}
	sink := &captureSink{}
	settings := Settings{
		QuestionTime: 40 * time.Millisecond,
		TickInterval: 10 * time.Millisecond,
		RevealPause:  20 * time.Millisecond,
		MaxQuestions: 20,
	}
	engine := NewEngine(settings, nil, WithRenderer(rec), WithResultSink(sink))
	defer engine.Close()

	pool := makePool(3)

	require.NoError(t, engine.Start(context.Background(), StartRequest{UserID: "u1", Category: models.CategoryGeneral, Pool: pool}))
	answerCurrent(t, engine, pool, true)

	require.NoError(t, engine.Quit())

	snap := engine.Snapshot()
	assert.Equal(t, StatusQuit, snap.Status)
	assert.Empty(t, snap.Question)

	rendered := rec.count()
	time.Sleep(150 * time.Millisecond)

	assert.Equal(t, rendered, rec.count())
	assert.Equal(t, StatusQuit, engine.Status())

	calls, _ := sink.get()
	assert.Zero(t, calls)

	_, ok := engine.Result()
	assert.False(t, ok)

	assert.ErrorIs(t, engine.Quit(), models.ErrInvalidTransition)
	assert.ErrorIs(t, engine.Advance(), models.ErrInvalidTransition)
}

func TestFinish_SinkFailureKeepsResult(t *testing.T) {
	failing := sinkFunc(func(context.Context, string, *models.QuizResult) error {
		return errors.New("disk full")
	})
	engine := NewEngine(manualSettings(), nil, WithResultSink(failing))
	defer engine.Close()

	pool := makePool(1)

	require.NoError(t, engine.Start(context.Background(), StartRequest{UserID: "u1", Category: models.CategoryGeneral, Pool: pool}))
	answerCurrent(t, engine, pool, true)
	require.NoError(t, engine.Advance())

	result, ok := engine.Result()
	require.True(t, ok)
	assert.Equal(t, 2, result.Score)
	assert.Equal(t, StatusFinished, engine.Status())
}

func TestSnapshot_OptionsIncludeCorrectAnswer(t *testing.T) {
	engine := NewEngine(manualSettings(), nil)
	defer engine.Close()

	pool := makePool(1)

	require.NoError(t, engine.Start(context.Background(), StartRequest{UserID: "u1", Category: models.CategoryGeneral, Pool: pool}))

	snap := engine.Snapshot()
	assert.ElementsMatch(t, []string{"w1", "w2", "w3", "right1"}, snap.Options)
	assert.Nil(t, snap.Answer)
	assert.Equal(t, 3600, snap.TimeLeftSeconds)
}

func TestStreakNotice(t *testing.T) {
	tests := []struct {
		streak int
		want   string
	}{
		{0, ""},
		{4, ""},
		{5, NoticeOnFire},
		{6, ""},
		{10, NoticeUnstoppable},
		{14, ""},
		{15, NoticeQuizMaster},
		{22, NoticeQuizMaster},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, StreakNotice(tt.streak), tt.streak)
	}
}

func TestQuizFlow_StreakNoticeInSnapshot(t *testing.T) {
	engine := NewEngine(manualSettings(), nil)
	defer engine.Close()

	pool := makePool(6)

	require.NoError(t, engine.Start(context.Background(), StartRequest{UserID: "u1", Category: models.CategoryGeneral, Pool: pool}))

	for i := range 5 {
		answerCurrent(t, engine, pool, true)

		if i == 4 {
			assert.Equal(t, NoticeOnFire, engine.Snapshot().Notice)
		} else {
			assert.Empty(t, engine.Snapshot().Notice)
		}

		require.NoError(t, engine.Advance())
	}

	// На новом вопросе уведомление сбрасывается
	assert.Empty(t, engine.Snapshot().Notice)
}
