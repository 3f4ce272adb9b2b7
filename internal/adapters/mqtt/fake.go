package mqtt

// Message is a payload recorded by FakePublisher.
type Message struct {
	Payload  []byte
	Retained bool
	Topic    string
}

// FakePublisher records published messages for test assertions.
type FakePublisher struct {
	// Closed tracks if Close was called.
	Closed bool

	// Messages contains every published message in order.
	Messages []Message

	// PublishError, if set, will be returned by Publish.
	PublishError error
}

// NewFakePublisher creates a FakePublisher for testing.
func NewFakePublisher() *FakePublisher {
	return &FakePublisher{}
}

// Publish records the message.
func (f *FakePublisher) Publish(topic string, retained bool, payload []byte) error {
	if f.PublishError != nil {
		return f.PublishError
	}
	f.Messages = append(f.Messages, Message{Payload: payload, Retained: retained, Topic: topic})
	return nil
}

// Close marks the publisher as closed.
func (f *FakePublisher) Close() error {
	f.Closed = true
	return nil
}

// OnTopic returns the messages published to topic.
func (f *FakePublisher) OnTopic(topic string) []Message {
	var out []Message
	for _, m := range f.Messages {
		if m.Topic == topic {
			out = append(out, m)
		}
	}
	return out
}
