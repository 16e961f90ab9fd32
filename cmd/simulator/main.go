// Gate traffic simulator. Generates synthetic entry and exit events so
// the backend can be exercised without real barrier hardware. Events go
// out over MQTT by default; when GATE_TRANSPORT=http the simulator
// drives the REST API directly instead. Lots and rates must already
// exist; their IDs are passed via environment variables.
package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math/rand"
	"net/http"
	"os"
	"strconv"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	log "github.com/sirupsen/logrus"
)

type gateEvent struct {
	LotID  string    `json:"lot_id"`
	Plate  string    `json:"plate"`
	Event  string    `json:"event"`
	Mode   string    `json:"mode,omitempty"`
	RateID string    `json:"rate_id,omitempty"`
	At     time.Time `json:"at"`
}

// session is one simulated parked vehicle. ref is the access id when
// the HTTP transport created it; the MQTT transport closes by plate.
type session struct {
	plate   string
	ref     string
	entryAt time.Time
	leaveAt time.Time
}

type transport interface {
	enter(s session) (ref string, err error)
	leave(s session, exitAt time.Time) error
}

type mqttTransport struct {
	client mqtt.Client
	lotID  string
	mode   string
	rateID string
}

func newMQTTTransport(broker, lotID, mode, rateID string) (*mqttTransport, error) {
	opts := mqtt.NewClientOptions().
		AddBroker(broker).
		SetClientID(fmt.Sprintf("gate-simulator-%d", os.Getpid()))

	client := mqtt.NewClient(opts)
	if token := client.Connect(); token.Wait() && token.Error() != nil {
		return nil, fmt.Errorf("failed to connect to MQTT broker %s: %w", broker, token.Error())
	}
	return &mqttTransport{client: client, lotID: lotID, mode: mode, rateID: rateID}, nil
}

func (t *mqttTransport) publish(ev gateEvent) error {
	payload, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("failed to marshal gate event: %w", err)
	}
	topic := fmt.Sprintf("parking/%s/gate", t.lotID)
	token := t.client.Publish(topic, 1, false, payload)
	token.Wait()
	return token.Error()
}

func (t *mqttTransport) enter(s session) (string, error) {
	return "", t.publish(gateEvent{
		LotID:  t.lotID,
		Plate:  s.plate,
		Event:  "entry",
		Mode:   t.mode,
		RateID: t.rateID,
		At:     s.entryAt,
	})
}

func (t *mqttTransport) leave(s session, exitAt time.Time) error {
	return t.publish(gateEvent{
		LotID: t.lotID,
		Plate: s.plate,
		Event: "exit",
		At:    exitAt,
	})
}

func (t *mqttTransport) close() {
	t.client.Disconnect(250)
}

// httpTransport opens and closes accesses through the REST API. It
// logs in once at startup and reuses the token.
type httpTransport struct {
	baseURL string
	token   string
	lotID   string
	mode    string
	rateID  string
	client  *http.Client
}

func newHTTPTransport(baseURL, username, password, lotID, mode, rateID string) (*httpTransport, error) {
	t := &httpTransport{
		baseURL: baseURL,
		lotID:   lotID,
		mode:    mode,
		rateID:  rateID,
		client:  &http.Client{Timeout: 10 * time.Second},
	}

	body, _ := json.Marshal(map[string]string{"username": username, "password": password})
	resp, err := t.client.Post(baseURL+"/api/auth/login", "application/json", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("login request failed: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("login failed with status %d", resp.StatusCode)
	}

	var loginResp struct {
		Token string `json:"token"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&loginResp); err != nil {
		return nil, fmt.Errorf("failed to decode login response: %w", err)
	}
	t.token = loginResp.Token
	return t, nil
}

func (t *httpTransport) do(method, path string, payload any, out any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	req, err := http.NewRequest(method, t.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+t.token)

	resp, err := t.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		return fmt.Errorf("%s %s returned status %d", method, path, resp.StatusCode)
	}
	if out != nil {
		return json.NewDecoder(resp.Body).Decode(out)
	}
	return nil
}

func (t *httpTransport) accessPayload(s session, exitAt *time.Time) map[string]any {
	payload := map[string]any{
		"lot_id":  t.lotID,
		"plate":   s.plate,
		"entry":   s.entryAt,
		"mode":    t.mode,
		"rate_id": t.rateID,
	}
	if exitAt != nil {
		payload["exit"] = *exitAt
	}
	return payload
}

func (t *httpTransport) enter(s session) (string, error) {
	var created struct {
		ID string `json:"id"`
	}
	if err := t.do(http.MethodPost, "/api/accesses", t.accessPayload(s, nil), &created); err != nil {
		return "", err
	}
	return created.ID, nil
}

func (t *httpTransport) leave(s session, exitAt time.Time) error {
	return t.do(http.MethodPut, "/api/accesses/"+s.ref, t.accessPayload(s, &exitAt), nil)
}

var letters = []rune("ABCDEFGHIJKLMNOPQRSTUVWXYZ")

func randomPlate() string {
	plate := make([]rune, 3)
	for i := range plate {
		plate[i] = letters[rand.Intn(len(letters))]
	}
	return fmt.Sprintf("%s%04d", string(plate), rand.Intn(10000))
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func main() {
	lotID := os.Getenv("LOT_ID")
	rateID := os.Getenv("RATE_ID")
	mode := envOr("BILLING_MODE", "TIME")
	if lotID == "" || rateID == "" {
		log.Fatal("LOT_ID and RATE_ID are required")
	}

	tickSec, _ := strconv.Atoi(envOr("TICK_SECONDS", "5"))
	if tickSec <= 0 {
		tickSec = 5
	}
	maxParked, _ := strconv.Atoi(envOr("MAX_PARKED", "50"))
	if maxParked <= 0 {
		maxParked = 50
	}

	var gate transport
	switch envOr("GATE_TRANSPORT", "mqtt") {
	case "http":
		apiURL := envOr("API_URL", "http://localhost:8080")
		t, err := newHTTPTransport(
			apiURL,
			envOr("SIM_USERNAME", "simulator"),
			envOr("SIM_PASSWORD", "simulator123"),
			lotID, mode, rateID,
		)
		if err != nil {
			log.WithError(err).Fatal("Failed to set up HTTP transport")
		}
		gate = t
		log.WithField("api_url", apiURL).Info("Gate simulator started over HTTP")
	default:
		broker := envOr("MQTT_BROKER", "tcp://localhost:1883")
		t, err := newMQTTTransport(broker, lotID, mode, rateID)
		if err != nil {
			log.WithError(err).Fatal("Failed to connect to MQTT broker")
		}
		defer t.close()
		gate = t
		log.WithFields(log.Fields{
			"broker": broker,
			"lot_id": lotID,
		}).Info("Gate simulator started over MQTT")
	}

	var parked []session
	ticker := time.NewTicker(time.Duration(tickSec) * time.Second)
	defer ticker.Stop()

	for range ticker.C {
		now := time.Now()

		// Release vehicles whose dwell time is up.
		remaining := parked[:0]
		for _, s := range parked {
			if now.After(s.leaveAt) {
				if err := gate.leave(s, now); err != nil {
					log.WithError(err).WithField("plate", s.plate).Error("Failed to record exit")
					remaining = append(remaining, s)
					continue
				}
				log.WithField("plate", s.plate).Info("Vehicle left")
				continue
			}
			remaining = append(remaining, s)
		}
		parked = remaining

		// Admit a new vehicle most ticks while there is room.
		if len(parked) < maxParked && rand.Float64() < 0.7 {
			s := session{
				plate:   randomPlate(),
				entryAt: now,
				leaveAt: now.Add(time.Duration(5+rand.Intn(115)) * time.Minute),
			}
			ref, err := gate.enter(s)
			if err != nil {
				log.WithError(err).WithField("plate", s.plate).Error("Failed to record entry")
				continue
			}
			s.ref = ref
			parked = append(parked, s)
			log.WithFields(log.Fields{
				"plate": s.plate,
				"dwell": s.leaveAt.Sub(now).String(),
			}).Info("Vehicle entered")
		}
	}
}
