package mqtt

import (
	"context"
	"fmt"
	"time"

	paho "github.com/eclipse/paho.mqtt.golang"

	"github.com/renato0307/stoplight/internal/logging"
)

// RealPublisher publishes to an actual MQTT broker.
type RealPublisher struct {
	client paho.Client
}

// NewRealPublisher creates a publisher connected to the given broker.
// The connect attempt gives up when ctx is done.
func NewRealPublisher(ctx context.Context, broker, clientID string) (*RealPublisher, error) {
	if clientID == "" {
		clientID = "stoplight"
	}
	opts := paho.NewClientOptions().
		AddBroker(broker).
		SetClientID(clientID).
		SetAutoReconnect(true).
		SetConnectRetry(true).
		SetConnectRetryInterval(5 * time.Second).
		SetConnectionLostHandler(func(_ paho.Client, err error) {
			logging.Logger.Warn("MQTT connection lost", "error", err)
		}).
		SetOnConnectHandler(func(paho.Client) {
			logging.Logger.Info("MQTT connected", "broker", broker)
		})

	client := paho.NewClient(opts)
	token := client.Connect()
	select {
	case <-token.Done():
	case <-ctx.Done():
		client.Disconnect(0)
		return nil, fmt.Errorf("connect to broker: %w", ctx.Err())
	case <-time.After(10 * time.Second):
		client.Disconnect(0)
		return nil, fmt.Errorf("connection timeout")
	}
	if err := token.Error(); err != nil {
		return nil, fmt.Errorf("connect to broker: %w", err)
	}

	return &RealPublisher{client: client}, nil
}

// Publish hands payload to the client and returns without waiting for the
// broker; delivery failures are logged.
func (p *RealPublisher) Publish(topic string, retained bool, payload []byte) error {
	// QoS 0 (at-most-once)
	token := p.client.Publish(topic, 0, retained, payload)
	go func() {
		if !token.WaitTimeout(5 * time.Second) {
			logging.Logger.Warn("MQTT publish timeout", "topic", topic)
			return
		}
		if err := token.Error(); err != nil {
			logging.Logger.Warn("MQTT publish failed", "topic", topic, "error", err)
		}
	}()
	return nil
}

// IsConnected reports whether the client currently has a broker connection.
func (p *RealPublisher) IsConnected() bool {
	return p.client.IsConnected()
}

// Close disconnects from the broker.
func (p *RealPublisher) Close() error {
	p.client.Disconnect(1000) // 1 second timeout
	return nil
}
