package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/Domenick1991/airdesk/internal/query"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockWriter struct {
	mock.Mock
}

func (m *MockWriter) WriteMessages(ctx context.Context, msgs ...kafka.Message) error {
	args := m.Called(ctx, msgs)
	return args.Error(0)
}

func (m *MockWriter) Close() error {
	return m.Called().Error(0)
}

type MockReader struct {
	mock.Mock
}

func (m *MockReader) ReadMessage(ctx context.Context) (kafka.Message, error) {
	args := m.Called(ctx)
	return args.Get(0).(kafka.Message), args.Error(1)
}

func (m *MockReader) Close() error {
	return m.Called().Error(0)
}

type MockInvalidator struct {
	mock.Mock
}

func (m *MockInvalidator) Invalidate(namespaces ...string) int {
	args := m.Called(namespaces)
	return args.Int(0)
}

func TestProducer_NamespacesInvalidated(t *testing.T) {
	writer := &MockWriter{}
	var sent []kafka.Message
	writer.On("WriteMessages", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) { sent = args.Get(1).([]kafka.Message) }).
		Return(nil).Once()

	writer.On("Close").Return(nil).Once()

	p := newProducer(writer, "airdesk.invalidations", "instance-a")
	p.NamespacesInvalidated(context.Background(), []string{"bookings"})
	require.NoError(t, p.Close())

	require.Len(t, sent, 1)
	assert.Equal(t, "airdesk.invalidations", sent[0].Topic)
	assert.Equal(t, []byte("instance-a"), sent[0].Key)

	var event InvalidationEvent
	require.NoError(t, json.Unmarshal(sent[0].Value, &event))
	assert.Equal(t, "instance-a", event.Source)
	assert.Equal(t, []string{"bookings"}, event.Namespaces)
	assert.NotEmpty(t, event.ID)
	writer.AssertExpectations(t)
}

func TestProducer_PublishFailureIsNotFatal(t *testing.T) {
	writer := &MockWriter{}
	writer.On("WriteMessages", mock.Anything, mock.Anything).Return(errors.New("broker down")).Twice()
	writer.On("Close").Return(nil).Once()

	p := newProducer(writer, "t", "instance-a")

	assert.NotPanics(t, func() { p.NamespacesInvalidated(context.Background(), []string{"airports"}) })
	assert.Error(t, p.Publish(context.Background(), InvalidationEvent{Source: "instance-a", At: time.Now()}))
	require.NoError(t, p.Close())
	writer.AssertExpectations(t)
}

// stuckWriter never acknowledges, like a writer whose brokers are unreachable.
type stuckWriter struct{}

func (stuckWriter) WriteMessages(ctx context.Context, _ ...kafka.Message) error {
	<-ctx.Done()
	return ctx.Err()
}

func (stuckWriter) Close() error { return nil }

func TestProducer_UnreachableBrokerDoesNotDelayMutation(t *testing.T) {
	p := newProducer(stuckWriter{}, "t", "instance-a")
	p.deadline = 200 * time.Millisecond

	cache := query.New()
	defer cache.Close()
	cache.OnInvalidate(p)

	start := time.Now()
	out, err := query.Mutate(context.Background(), cache, func(context.Context) (string, error) {
		return "created", nil
	}, "bookings")
	elapsed := time.Since(start)

	require.NoError(t, err)
	assert.Equal(t, "created", out)
	assert.Less(t, elapsed, 100*time.Millisecond)

	require.NoError(t, p.Close())
	assert.GreaterOrEqual(t, time.Since(start), p.deadline, "Close waits for the pending publish")
}

func TestInvalidationHandler(t *testing.T) {
	cache := &MockInvalidator{}
	cache.On("Invalidate", []string{"bookings", "flights"}).Return(3).Once()
	handle := InvalidationHandler("instance-a", cache)

	own, _ := json.Marshal(InvalidationEvent{ID: "1", Source: "instance-a", Namespaces: []string{"airports"}})
	other, _ := json.Marshal(InvalidationEvent{ID: "2", Source: "instance-b", Namespaces: []string{"bookings", "flights"}})

	ctx := context.Background()
	assert.NoError(t, handle(ctx, kafka.Message{Value: own}))
	assert.NoError(t, handle(ctx, kafka.Message{Value: other}))
	assert.NoError(t, handle(ctx, kafka.Message{Value: []byte("not json")}))

	cache.AssertExpectations(t)
}

func TestConsumer_Consume(t *testing.T) {
	reader := &MockReader{}
	ctx := context.Background()
	stop := errors.New("stopped")
	reader.On("ReadMessage", ctx).Return(kafka.Message{Value: []byte("a")}, nil).Once()
	reader.On("ReadMessage", ctx).Return(kafka.Message{}, stop).Once()

	c := &Consumer{reader: reader}
	var got []string
	err := c.Consume(ctx, func(_ context.Context, msg kafka.Message) error {
		got = append(got, string(msg.Value))
		return nil
	})

	assert.ErrorIs(t, err, stop)
	assert.Equal(t, []string{"a"}, got)
	reader.AssertExpectations(t)
}

func TestConsumer_HandlerErrorStops(t *testing.T) {
	reader := &MockReader{}
	ctx := context.Background()
	boom := errors.New("boom")
	reader.On("ReadMessage", ctx).Return(kafka.Message{Offset: 7}, nil).Once()

	c := &Consumer{reader: reader}
	err := c.Consume(ctx, func(context.Context, kafka.Message) error { return boom })

	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "offset 7")
	reader.AssertExpectations(t)
}
