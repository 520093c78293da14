package notifications

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/factoryedge/machine-rule-engine/internal/pkg/infrastructure/storage"
	"github.com/factoryedge/machine-rule-engine/pkg/types"

	"github.com/diwise/messaging-golang/pkg/messaging"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"
)

var ErrTemplateNotFound = fmt.Errorf("notification template not found")

//go:generate moq -rm -out dispatcher_mock.go . Dispatcher
type Dispatcher interface {
	Dispatch(ctx context.Context, event types.Event) error
	Tick(ctx context.Context) error
	Deliveries(ctx context.Context, eventID int64, status string, offset, limit int) (types.Collection[types.Delivery], error)
}

//go:generate moq -rm -out deliverystorage_mock.go . DeliveryStorage
type DeliveryStorage interface {
	GetTemplate(ctx context.Context, templateID int64) (types.Template, error)
	AddDeliveries(ctx context.Context, deliveries []types.Delivery) ([]types.Delivery, error)
	QueryDeliveries(ctx context.Context, conditions ...storage.ConditionFunc) (types.Collection[types.Delivery], error)
	MarkDeliverySent(ctx context.Context, deliveryID int64, sentAt time.Time) error
	MarkDeliveryFailed(ctx context.Context, deliveryID int64, attemptedAt time.Time, errorMessage string) error
	ClaimRetries(ctx context.Context, now time.Time, claimTimeout time.Duration, limit int) ([]types.Delivery, error)
	DeliveryTally(ctx context.Context, eventID, templateID int64) (types.DeliveryTally, error)
}

//go:generate moq -rm -out eventupdater_mock.go . EventUpdater

// EventUpdater is the slice of the event service the dispatcher needs
// to settle execution results.
type EventUpdater interface {
	SetExecutionResult(ctx context.Context, eventID int64, index int, result types.ExecutionResult) error
	FinalizeNotificationAction(ctx context.Context, eventID, templateID int64, tally types.DeliveryTally) error
}

type Config struct {
	Workers      int
	SendTimeout  time.Duration
	ClaimTimeout time.Duration
	BatchLimit   int
}

func (c Config) withDefaults() Config {
	if c.Workers <= 0 {
		c.Workers = 8
	}
	if c.SendTimeout <= 0 {
		c.SendTimeout = 10 * time.Second
	}
	if c.ClaimTimeout <= 0 {
		c.ClaimTimeout = 5 * time.Minute
	}
	if c.BatchLimit <= 0 {
		c.BatchLimit = 100
	}
	return c
}

type dispatcher struct {
	storage   DeliveryStorage
	events    EventUpdater
	senders   map[string]Sender
	messenger messaging.MsgContext
	cfg       Config
}

func New(s DeliveryStorage, e EventUpdater, senders map[string]Sender, messenger messaging.MsgContext, cfg Config) Dispatcher {
	return &dispatcher{
		storage:   s,
		events:    e,
		senders:   senders,
		messenger: messenger,
		cfg:       cfg.withDefaults(),
	}
}

// Dispatch executes the action plan recorded on an event. Failures in
// here never propagate back into the evaluator: the event and the
// rule's cooldown stamp are already durable, and each action (and each
// delivery within an action) fails independently of its siblings.
func (d *dispatcher) Dispatch(ctx context.Context, event types.Event) error {
	log := logging.GetFromContext(ctx)

	for i, result := range event.ExecutionResults {
		if result.Status != types.ResultStatusPending {
			continue
		}

		var err error

		switch result.Type {
		case types.ActionTypeNotification:
			err = d.dispatchNotification(ctx, event, i, result)
		case types.ActionTypeStopMachine:
			err = d.requestMachineStop(ctx, event, i, result)
		default:
			err = fmt.Errorf("unknown action type %q", result.Type)
		}

		if err != nil {
			log.Error("action dispatch failed", "event_id", event.ID, "action", result.Type, "err", err.Error())
		}
	}

	return nil
}

func (d *dispatcher) Deliveries(ctx context.Context, eventID int64, status string, offset, limit int) (types.Collection[types.Delivery], error) {
	conditions := []storage.ConditionFunc{storage.WithOffset(offset), storage.WithLimit(limit)}
	if eventID != 0 {
		conditions = append(conditions, storage.WithEventID(eventID))
	}
	if status != "" {
		conditions = append(conditions, storage.WithStatus(status))
	}

	return d.storage.QueryDeliveries(ctx, conditions...)
}

func (d *dispatcher) dispatchNotification(ctx context.Context, event types.Event, index int, result types.ExecutionResult) error {
	template, err := d.storage.GetTemplate(ctx, result.TemplateID)
	if err != nil {
		if errors.Is(err, storage.ErrNoRows) {
			result.Status = types.ResultStatusFailed
			result.Error = "missing_template"
			result.CompletedAt = time.Now().UTC()

			err = d.events.SetExecutionResult(ctx, event.ID, index, result)
			if err != nil {
				return err
			}

			return fmt.Errorf("%w: template %d", ErrTemplateNotFound, result.TemplateID)
		}
		return err
	}

	message := Render(template.MessageTemplate, event)
	now := time.Now().UTC()

	deliveries := lo.Map(template.Recipients, func(r types.Recipient, _ int) types.Delivery {
		return types.Delivery{
			EventID:       event.ID,
			TemplateID:    template.ID,
			Channel:       r.Channel,
			Address:       r.Address,
			RecipientName: r.Name,
			Message:       message,
			Status:        types.DeliveryStatusPending,
			Priority:      template.Priority,
			ClaimedAt:     now,
		}
	})

	added, err := d.storage.AddDeliveries(ctx, deliveries)
	if err != nil {
		return err
	}

	d.sendAll(ctx, added)

	tally, err := d.storage.DeliveryTally(ctx, event.ID, template.ID)
	if err != nil {
		return err
	}

	return d.events.FinalizeNotificationAction(ctx, event.ID, template.ID, tally)
}

func (d *dispatcher) requestMachineStop(ctx context.Context, event types.Event, index int, result types.ExecutionResult) error {
	err := d.messenger.PublishOnTopic(ctx, &types.MachineStopRequested{
		MachineID: result.MachineID,
		EventID:   event.ID,
		RuleID:    event.RuleID,
		Timestamp: time.Now().UTC(),
	})

	if err != nil {
		result.Status = types.ResultStatusFailed
		result.Error = err.Error()
	} else {
		result.Status = types.ResultStatusCompleted
	}
	result.CompletedAt = time.Now().UTC()

	return d.events.SetExecutionResult(ctx, event.ID, index, result)
}

// sendAll fans deliveries out on a bounded pool so a wide recipient
// list cannot open an unbounded number of outbound connections. Each
// send gets its own timeout; one hanging channel cannot stall the rest
// of the pool forever.
func (d *dispatcher) sendAll(ctx context.Context, deliveries []types.Delivery) {
	g := new(errgroup.Group)
	g.SetLimit(d.cfg.Workers)

	for _, delivery := range deliveries {
		delivery := delivery
		g.Go(func() error {
			d.attempt(ctx, delivery)
			return nil
		})
	}

	g.Wait()
}

func (d *dispatcher) attempt(ctx context.Context, delivery types.Delivery) {
	log := logging.GetFromContext(ctx)

	sender, ok := d.senders[delivery.Channel]
	if !ok {
		err := d.storage.MarkDeliveryFailed(ctx, delivery.ID, time.Now().UTC(),
			fmt.Sprintf("%s: no sender for channel %q", FailureRejected, delivery.Channel))
		if err != nil {
			log.Error("could not mark delivery failed", "delivery_id", delivery.ID, "err", err.Error())
		}
		return
	}

	sendCtx, cancel := context.WithTimeout(ctx, d.cfg.SendTimeout)
	defer cancel()

	err := sender.Send(sendCtx, delivery.Address, delivery.Message)
	if err != nil {
		log.Debug("delivery attempt failed", "delivery_id", delivery.ID, "channel", delivery.Channel, "err", err.Error())

		err = d.storage.MarkDeliveryFailed(ctx, delivery.ID, time.Now().UTC(), err.Error())
		if err != nil {
			log.Error("could not mark delivery failed", "delivery_id", delivery.ID, "err", err.Error())
		}
		return
	}

	err = d.storage.MarkDeliverySent(ctx, delivery.ID, time.Now().UTC())
	if err != nil {
		log.Error("could not mark delivery sent", "delivery_id", delivery.ID, "err", err.Error())
	}
}

// Tick claims and re-sends deliveries that are due for a retry, then
// settles the execution results whose fan-outs have fully resolved.
// Claiming is a single conditional update, so overlapping ticks from
// concurrent schedulers never double-process a delivery.
func (d *dispatcher) Tick(ctx context.Context) error {
	now := time.Now().UTC()

	claimed, err := d.storage.ClaimRetries(ctx, now, d.cfg.ClaimTimeout, d.cfg.BatchLimit)
	if err != nil {
		return err
	}

	if len(claimed) == 0 {
		return nil
	}

	d.sendAll(ctx, claimed)

	type fanout struct {
		eventID    int64
		templateID int64
	}

	pairs := lo.Uniq(lo.Map(claimed, func(d types.Delivery, _ int) fanout {
		return fanout{eventID: d.EventID, templateID: d.TemplateID}
	}))

	var errs []error

	for _, p := range pairs {
		tally, err := d.storage.DeliveryTally(ctx, p.eventID, p.templateID)
		if err != nil {
			errs = append(errs, err)
			continue
		}

		errs = append(errs, d.events.FinalizeNotificationAction(ctx, p.eventID, p.templateID, tally))
	}

	return errors.Join(errs...)
}
