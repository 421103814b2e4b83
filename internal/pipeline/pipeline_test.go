package pipeline

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"zorservice/internal/constants"
	"zorservice/internal/models"
	"zorservice/internal/session"
)

type fakeSequencer struct{ number string }

func (f *fakeSequencer) Next() string { return f.number }

type fakeOrderRepo struct {
	mu     sync.Mutex
	saved  []models.Order
	err    error
	onSave func()
}

func (f *fakeOrderRepo) SaveOrder(order models.Order) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return 0, f.err
	}
	if f.onSave != nil {
		f.onSave()
	}
	f.saved = append(f.saved, order)
	return int64(len(f.saved)), nil
}

type fakeRelay struct {
	mu   sync.Mutex
	sent []models.Order
	err  error
}

func (f *fakeRelay) Send(order models.Order) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, order)
	return f.err
}

func (f *fakeRelay) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.sent)
}

type fakeNotifier struct {
	notified []models.Order
	err      error
}

func (f *fakeNotifier) NotifyOperator(order models.Order) error {
	f.notified = append(f.notified, order)
	return f.err
}

type fakeCleaner struct{ cleaned [][]string }

func (f *fakeCleaner) Cleanup(files []string) { f.cleaned = append(f.cleaned, files) }

type fakeSessions struct{ cleared []int64 }

func (f *fakeSessions) Clear(chatID int64) { f.cleared = append(f.cleared, chatID) }

type fixture struct {
	pipe     *Pipeline
	seq      *fakeSequencer
	repo     *fakeOrderRepo
	relay    *fakeRelay
	notifier *fakeNotifier
	cleaner  *fakeCleaner
	sessions *fakeSessions
}

func newFixture() *fixture {
	f := &fixture{
		seq:      &fakeSequencer{number: "01062024-0001"},
		repo:     &fakeOrderRepo{},
		relay:    &fakeRelay{},
		notifier: &fakeNotifier{},
		cleaner:  &fakeCleaner{},
		sessions: &fakeSessions{},
	}
	f.pipe = New(f.seq, f.repo, f.relay, f.notifier, f.cleaner, f.sessions)
	return f
}

func confirmedSession() session.Session {
	sess := session.NewSession(777, "ivan")
	sess.State = constants.STATE_CONFIRM
	sess.Name = "Иван"
	sess.Phone = "+79990001122"
	sess.TechType = "Холодильник"
	sess.Problem = "Не морозит"
	sess.Media = []string{"777_a.jpg", "777_b.mp4"}
	return sess
}

// Успешная отправка: заявка сохранена, оператор уведомлен, вебхук вызван,
// сессия и вложения зачищены.
func TestSubmitHappyPath(t *testing.T) {
	f := newFixture()

	number, err := f.pipe.Submit(confirmedSession())
	f.pipe.WaitRelays()

	require.NoError(t, err)
	assert.Equal(t, "01062024-0001", number)
	require.Len(t, f.repo.saved, 1)
	assert.Equal(t, "Холодильник", f.repo.saved[0].TechType)
	assert.Equal(t, []string{"777_a.jpg", "777_b.mp4"}, f.repo.saved[0].MediaFiles)
	assert.Equal(t, 1, f.relay.count())
	require.Len(t, f.notifier.notified, 1)
	assert.Equal(t, [][]string{{"777_a.jpg", "777_b.mp4"}}, f.cleaner.cleaned)
	assert.Equal(t, []int64{777}, f.sessions.cleared)
}

// Сценарий D: вебхук падает, но заявка сохранена, оператор уведомлен,
// результат для пользователя успешный.
func TestSubmitSucceedsWhenRelayFails(t *testing.T) {
	f := newFixture()
	f.relay.err = errors.New("вебхук вернул статус 500")

	number, err := f.pipe.Submit(confirmedSession())
	f.pipe.WaitRelays()

	require.NoError(t, err)
	assert.NotEmpty(t, number)
	assert.Len(t, f.repo.saved, 1)
	assert.Len(t, f.notifier.notified, 1)
}

// Заявка записывается в БД раньше, чем стартует передача на вебхук.
func TestSubmitPersistsBeforeRelay(t *testing.T) {
	f := newFixture()
	f.repo.onSave = func() {
		assert.Equal(t, 0, f.relay.count(), "вебхук вызван до записи заявки")
	}

	_, err := f.pipe.Submit(confirmedSession())
	f.pipe.WaitRelays()

	require.NoError(t, err)
}

// Ошибка записи: уведомления не отправляются, но очистка все равно выполнена.
func TestSubmitCleansUpOnPersistFailure(t *testing.T) {
	f := newFixture()
	f.repo.err = errors.New("база недоступна")

	_, err := f.pipe.Submit(confirmedSession())
	f.pipe.WaitRelays()

	require.Error(t, err)
	assert.Equal(t, 0, f.relay.count())
	assert.Empty(t, f.notifier.notified)
	assert.Equal(t, [][]string{{"777_a.jpg", "777_b.mp4"}}, f.cleaner.cleaned)
	assert.Equal(t, []int64{777}, f.sessions.cleared)
}

// Паника внутри шага не покидает конвейер: возвращается ошибка,
// очистка выполнена.
func TestSubmitRecoversFromPanic(t *testing.T) {
	f := newFixture()
	f.repo.onSave = func() { panic("неожиданный сбой хранилища") }

	number, err := f.pipe.Submit(confirmedSession())
	f.pipe.WaitRelays()

	require.Error(t, err)
	assert.Empty(t, number)
	assert.Equal(t, [][]string{{"777_a.jpg", "777_b.mp4"}}, f.cleaner.cleaned)
	assert.Equal(t, []int64{777}, f.sessions.cleared)
}

// Ошибка уведомления оператора: заявка уже в БД, очистка выполнена,
// пользователю вернется общая ошибка.
func TestSubmitCleansUpOnNotifyFailure(t *testing.T) {
	f := newFixture()
	f.notifier.err = errors.New("telegram недоступен")

	_, err := f.pipe.Submit(confirmedSession())
	f.pipe.WaitRelays()

	require.Error(t, err)
	assert.Len(t, f.repo.saved, 1)
	assert.Equal(t, []int64{777}, f.sessions.cleared)
	require.Len(t, f.cleaner.cleaned, 1)
}
