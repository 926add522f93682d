package employee

import (
	"context"
	"iter"
	"time"

	"go-employee/internal/events"
	"go-employee/internal/shared/contextutil"

	"go.uber.org/zap"
)

// Outcome is the explicit result of a mutation addressed by id.
type Outcome int

const (
	OutcomeUpdated Outcome = iota + 1
	OutcomeDeleted
	OutcomeNotFound
)

func (o Outcome) String() string {
	switch o {
	case OutcomeUpdated:
		return "updated"
	case OutcomeDeleted:
		return "deleted"
	case OutcomeNotFound:
		return "not_found"
	default:
		return "unknown"
	}
}

const serviceLoggerName = "employee.service"

// publishTimeout bounds how long a committed mutation waits on the event
// publisher.
var publishTimeout = 2 * time.Second

type Service interface {
	SaveEmployee(ctx context.Context, dto EmployeeDto) (EmployeeDto, error)
	// GetEmployee reports found=false with a nil error for an unknown id.
	GetEmployee(ctx context.Context, id string) (EmployeeDto, bool, error)
	GetAllEmployees(ctx context.Context) iter.Seq2[EmployeeDto, error]
	// UpdateEmployee replaces first name, last name and email of the
	// employee with the given id. dto.ID is ignored.
	UpdateEmployee(ctx context.Context, dto EmployeeDto, id string) (EmployeeDto, Outcome, error)
	DeleteEmployee(ctx context.Context, id string) (Outcome, error)
}

type service struct {
	repo      Repository
	publisher EventPublisher
	logger    *zap.Logger
}

func NewService(repo Repository, publisher EventPublisher, logger ...*zap.Logger) Service {
	l := zap.L().Named(serviceLoggerName)
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named(serviceLoggerName)
	}
	if publisher == nil {
		publisher = NewNoopEventPublisher()
	}
	return &service{
		repo:      repo,
		publisher: publisher,
		logger:    l,
	}
}

// log prefers the request logger, renamed so service entries keep their
// component name.
func (s *service) log(ctx context.Context) *zap.Logger {
	if l, ok := contextutil.LoggerFrom(ctx); ok {
		return l.Named(serviceLoggerName)
	}
	return s.logger
}

func (s *service) SaveEmployee(ctx context.Context, dto EmployeeDto) (EmployeeDto, error) {
	log := s.log(ctx)
	log.Debug("save employee requested", zap.String("email", dto.Email))

	empl := ToEntity(dto)
	if err := s.repo.Save(ctx, &empl); err != nil {
		log.Error("save employee persist failed", zap.Error(err))
		return EmployeeDto{}, mapRepositoryError(err)
	}

	s.publish(ctx, events.EmployeeCreated, empl.ID)
	log.Info("save employee success", zap.String("employee_id", empl.ID))

	return ToDto(empl), nil
}

func (s *service) GetEmployee(ctx context.Context, id string) (EmployeeDto, bool, error) {
	log := s.log(ctx)
	log.Debug("get employee requested", zap.String("employee_id", id))

	empl, err := s.repo.FindByID(ctx, id)
	if err != nil {
		log.Error("get employee failed", zap.String("employee_id", id), zap.Error(err))
		return EmployeeDto{}, false, mapRepositoryError(err)
	}
	if empl == nil {
		return EmployeeDto{}, false, nil
	}

	return ToDto(*empl), true, nil
}

func (s *service) GetAllEmployees(ctx context.Context) iter.Seq2[EmployeeDto, error] {
	return func(yield func(EmployeeDto, error) bool) {
		log := s.log(ctx)
		log.Debug("get all employees requested")

		for empl, err := range s.repo.FindAll(ctx) {
			if err != nil {
				log.Error("get all employees failed", zap.Error(err))
				yield(EmployeeDto{}, mapRepositoryError(err))
				return
			}
			if !yield(ToDto(empl), nil) {
				return
			}
		}
	}
}

func (s *service) UpdateEmployee(ctx context.Context, dto EmployeeDto, id string) (EmployeeDto, Outcome, error) {
	log := s.log(ctx)
	log.Debug("update employee requested", zap.String("employee_id", id))

	empl, err := s.repo.FindByID(ctx, id)
	if err != nil {
		log.Error("update employee fetch existing failed", zap.String("employee_id", id), zap.Error(err))
		return EmployeeDto{}, 0, mapRepositoryError(err)
	}
	if empl == nil {
		log.Info("update employee not found", zap.String("employee_id", id))
		return EmployeeDto{}, OutcomeNotFound, nil
	}

	empl.FirstName = dto.FirstName
	empl.LastName = dto.LastName
	empl.Email = dto.Email

	updated, err := s.repo.Update(ctx, empl)
	if err != nil {
		log.Error("update employee persist failed", zap.String("employee_id", id), zap.Error(err))
		return EmployeeDto{}, 0, mapRepositoryError(err)
	}
	if !updated {
		log.Info("update employee deleted concurrently", zap.String("employee_id", id))
		return EmployeeDto{}, OutcomeNotFound, nil
	}

	s.publish(ctx, events.EmployeeUpdated, id)
	log.Info("update employee success", zap.String("employee_id", id))

	return ToDto(*empl), OutcomeUpdated, nil
}

func (s *service) DeleteEmployee(ctx context.Context, id string) (Outcome, error) {
	log := s.log(ctx)
	log.Debug("delete employee requested", zap.String("employee_id", id))

	deleted, err := s.repo.DeleteByID(ctx, id)
	if err != nil {
		log.Error("delete employee failed", zap.String("employee_id", id), zap.Error(err))
		return 0, mapRepositoryError(err)
	}
	if !deleted {
		log.Info("delete employee not found", zap.String("employee_id", id))
		return OutcomeNotFound, nil
	}

	s.publish(ctx, events.EmployeeDeleted, id)
	log.Info("delete employee success", zap.String("employee_id", id))

	return OutcomeDeleted, nil
}

// publish never fails the request; the mutation is already stored. It
// outlives a cancelled request but not publishTimeout.
func (s *service) publish(ctx context.Context, eventType, employeeID string) {
	pubCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), publishTimeout)
	defer cancel()

	event := events.EmployeeEvent{
		EventType:  eventType,
		RequestID:  contextutil.GetRequestID(ctx),
		EmployeeID: employeeID,
		OccurredAt: time.Now().UTC(),
	}
	if err := s.publisher.Publish(pubCtx, event); err != nil {
		s.log(ctx).Warn("publish employee event failed",
			zap.String("event_type", eventType),
			zap.String("employee_id", employeeID),
			zap.Error(err),
		)
	}
}
