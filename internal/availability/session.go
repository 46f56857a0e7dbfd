package availability

import (
	"github.com/m04kA/SMC-DeskBooking/internal/domain"
	"github.com/m04kA/SMC-DeskBooking/pkg/types"
)

// State состояние сессии бронирования (одно модальное окно, не сохраняется)
type State string

const (
	StateIdle             State = "idle"
	StateNameEntered      State = "name_entered"
	StateEligibleToCreate State = "eligible_to_create"
	StateEligibleToEdit   State = "eligible_to_edit"
	StateBlocked          State = "blocked"
	StateSubmitting       State = "submitting"
	StateSuccess          State = "success"
)

// BlockReason причина блокировки бронирования
type BlockReason string

const (
	BlockNone              BlockReason = ""
	BlockCapacityExhausted BlockReason = "capacity_exhausted"
	BlockPastDate          BlockReason = "past_date"
	BlockWeekend           BlockReason = "weekend"
)

// Intent действие, которое будет выполнено при отправке
type Intent string

const (
	IntentCreate Intent = "create"
	IntentEdit   Intent = "edit"
)

// Evaluation результат оценки введенного имени
type Evaluation struct {
	Name           string
	State          State
	Reason         BlockReason
	AvailableSpots int
}

// Session машина состояний одной попытки бронирования:
//
//	Idle -> NameEntered -> {EligibleToCreate | EligibleToEdit | Blocked} -> Submitting -> {Success | NameEntered+error}
//
// Неудачная отправка (Fail) возвращает сессию в NameEntered с сохранением имени и ошибки.
// Одновременно допускается только одна отправка.
// Session не потокобезопасна: ею владеет один запрос или одно окно.
type Session struct {
	calc         *Calculator
	date         types.Date
	today        types.Date
	reservations []*domain.Reservation

	name    string
	state   State
	reason  BlockReason
	intent  Intent
	lastErr error
}

// NewSession создает сессию для даты в состоянии Idle
func NewSession(calc *Calculator, date, today types.Date, reservations []*domain.Reservation) *Session {
	return &Session{
		calc:         calc,
		date:         date,
		today:        today,
		reservations: reservations,
		state:        StateIdle,
	}
}

func (s *Session) State() State { return s.state }
func (s *Session) Reason() BlockReason { return s.reason }
func (s *Session) Name() string { return s.name }
func (s *Session) Date() types.Date { return s.date }
func (s *Session) Err() error { return s.lastErr }
func (s *Session) Intent() Intent { return s.intent }
func (s *Session) IsPending() bool { return s.state == StateSubmitting }
func (s *Session) AvailableSpots() int { return s.calc.AvailableSpots(s.reservations) }
func (s *Session) Existing() *domain.Reservation {
	return FindByName(s.name, s.reservations)
}

// EnterName сохраняет введенное имя и переоценивает состояние.
// Во время отправки имя не меняется.
func (s *Session) EnterName(name string) (State, error) {
	if s.state == StateSubmitting {
		return s.state, ErrSubmissionPending
	}

	s.name = domain.NormalizeName(name)
	if s.name == "" {
		s.state = StateIdle
		s.reason = BlockNone
		return s.state, nil
	}

	s.state = StateNameEntered
	s.evaluate()
	return s.state, nil
}

// Refresh заменяет список бронирований дня (после повторной загрузки) и переоценивает состояние.
// Завершенная сессия (Success) остается завершенной.
func (s *Session) Refresh(reservations []*domain.Reservation) {
	s.reservations = reservations
	switch s.state {
	case StateSubmitting, StateIdle, StateSuccess:
		return
	}
	s.state = StateNameEntered
	s.evaluate()
}

// BeginSubmit переводит сессию в Submitting и возвращает намерение (создание или изменение)
func (s *Session) BeginSubmit() (Intent, error) {
	switch s.state {
	case StateSubmitting:
		return "", ErrSubmissionPending
	case StateNameEntered:
		s.evaluate()
	}

	switch s.state {
	case StateEligibleToCreate:
		s.intent = IntentCreate
	case StateEligibleToEdit:
		s.intent = IntentEdit
	default:
		return "", ErrNotEligible
	}

	s.lastErr = nil
	s.state = StateSubmitting
	return s.intent, nil
}

// Succeed завершает отправку успешно
func (s *Session) Succeed() error {
	if s.state != StateSubmitting {
		return ErrNotSubmitting
	}
	s.state = StateSuccess
	return nil
}

// Fail фиксирует ошибку отправки и возвращает сессию в NameEntered, сохраняя имя
func (s *Session) Fail(err error) error {
	if s.state != StateSubmitting {
		return ErrNotSubmitting
	}
	s.lastErr = err
	s.state = StateNameEntered
	return nil
}

func (s *Session) evaluate() {
	eval := s.calc.Evaluate(s.name, s.date, s.reservations, s.today)
	s.state = eval.State
	s.reason = eval.Reason
}
