// Package gate bridges barrier controllers to the access lifecycle.
// Controllers publish entry and exit events over MQTT; the listener
// opens or closes the matching access record.
package gate

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	log "github.com/sirupsen/logrus"

	"github.com/uparkdev/parking-backend/internal/models"
	"github.com/uparkdev/parking-backend/internal/service"
)

const (
	// gateTopic matches parking/<lot_id>/gate.
	gateTopic = "parking/+/gate"

	EventEntry = "entry"
	EventExit  = "exit"
)

// Event is the payload barrier controllers publish on the gate topic.
type Event struct {
	LotID  string             `json:"lot_id"`
	Plate  string             `json:"plate"`
	Event  string             `json:"event"`
	Mode   models.BillingMode `json:"mode,omitempty"`
	RateID string             `json:"rate_id,omitempty"`
	At     time.Time          `json:"at"`
}

// AccessOpener is the subset of the access service the listener needs.
type AccessOpener interface {
	Create(ctx context.Context, in service.AccessInput) (*models.Access, error)
	CloseByPlate(ctx context.Context, plate string, at time.Time) (*models.Access, error)
}

// Listener consumes gate events from an MQTT broker.
type Listener struct {
	client   mqtt.Client
	accesses AccessOpener
	timeout  time.Duration
}

// NewListener creates a gate listener connected to the given broker.
func NewListener(broker, clientID string, accesses AccessOpener) (*Listener, error) {
	opts := mqtt.NewClientOptions().
		AddBroker(broker).
		SetClientID(clientID).
		SetAutoReconnect(true).
		SetConnectRetry(true).
		SetConnectRetryInterval(5 * time.Second)

	opts.OnConnectionLost = func(_ mqtt.Client, err error) {
		log.WithError(err).Warn("MQTT connection lost")
	}

	client := mqtt.NewClient(opts)
	token := client.Connect()
	if !token.WaitTimeout(10 * time.Second) {
		return nil, fmt.Errorf("timed out connecting to MQTT broker %s", broker)
	}
	if err := token.Error(); err != nil {
		return nil, fmt.Errorf("failed to connect to MQTT broker %s: %w", broker, err)
	}

	return &Listener{
		client:   client,
		accesses: accesses,
		timeout:  10 * time.Second,
	}, nil
}

// Start subscribes to the gate topic. Events are processed on paho's
// handler goroutine, one at a time per connection.
func (l *Listener) Start() error {
	token := l.client.Subscribe(gateTopic, 1, l.handleMessage)
	token.Wait()
	if err := token.Error(); err != nil {
		return fmt.Errorf("failed to subscribe to %s: %w", gateTopic, err)
	}
	log.WithField("topic", gateTopic).Info("Gate listener started")
	return nil
}

// Stop disconnects from the broker.
func (l *Listener) Stop() {
	l.client.Disconnect(250)
}

func (l *Listener) handleMessage(_ mqtt.Client, msg mqtt.Message) {
	var event Event
	if err := json.Unmarshal(msg.Payload(), &event); err != nil {
		log.WithError(err).WithField("topic", msg.Topic()).Warn("Discarding malformed gate event")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), l.timeout)
	defer cancel()

	if err := l.Handle(ctx, event); err != nil {
		log.WithError(err).WithFields(log.Fields{
			"plate": event.Plate,
			"event": event.Event,
		}).Error("Failed to process gate event")
	}
}

// Handle applies a single gate event. Entry events open an access,
// exit events close the open access for the plate and settle the fee.
func (l *Listener) Handle(ctx context.Context, event Event) error {
	at := event.At
	if at.IsZero() {
		at = time.Now()
	}

	switch event.Event {
	case EventEntry:
		access, err := l.accesses.Create(ctx, service.AccessInput{
			LotID:  event.LotID,
			Plate:  event.Plate,
			Entry:  at,
			Mode:   event.Mode,
			RateID: event.RateID,
		})
		if err != nil {
			return fmt.Errorf("opening access for plate %s: %w", event.Plate, err)
		}
		log.WithFields(log.Fields{
			"plate":  access.Plate,
			"ticket": access.Ticket,
		}).Info("Access opened")
		return nil

	case EventExit:
		access, err := l.accesses.CloseByPlate(ctx, event.Plate, at)
		if err != nil {
			return fmt.Errorf("closing access for plate %s: %w", event.Plate, err)
		}
		log.WithFields(log.Fields{
			"plate":  access.Plate,
			"ticket": access.Ticket,
			"amount": access.Amount.String(),
		}).Info("Access closed")
		return nil

	default:
		return fmt.Errorf("unknown gate event type %q", event.Event)
	}
}
