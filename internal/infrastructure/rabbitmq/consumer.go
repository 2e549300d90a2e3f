package rabbitmq

import (
	"context"
	"errors"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/rs/zerolog"
)

// ErrRetry marca un fallo transitorio: el mensaje vuelve a la cola.
// Cualquier otro error manda el mensaje a la DLQ.
var ErrRetry = errors.New("rabbitmq: reintentar")

// Handler procesa el cuerpo de un mensaje.
type Handler func(ctx context.Context, body []byte) error

// Topology nombres del exchange, la cola y la clave de enrutamiento.
type Topology struct {
	Exchange   string
	Queue      string
	RoutingKey string
}

func (t Topology) dlqExchange() string { return t.Exchange + "_dlq" }
func (t Topology) dlqQueue() string    { return t.Queue + "_dlq" }

// Consumer consume una cola con ack manual y reconexión.
type Consumer struct {
	dialer        Dialer
	topology      Topology
	prefetch      int
	log           zerolog.Logger
	reconnectWait time.Duration

	// espera antes de reencolar: retryBase, 2x, 4x... hasta retryMax. Se reinicia con cualquier otro resultado.
	retryBase time.Duration
	retryMax  time.Duration
	retries   int
}

// NewConsumer construye el consumidor.
func NewConsumer(dialer Dialer, topology Topology, prefetch int, log zerolog.Logger) *Consumer {
	return &Consumer{
		dialer:        dialer,
		topology:      topology,
		prefetch:      prefetch,
		log:           log,
		reconnectWait: 5 * time.Second,
		retryBase:     500 * time.Millisecond,
		retryMax:      30 * time.Second,
	}
}

// Run consume hasta que ctx se cancele; ante una caída reintenta cada reconnectWait.
func (c *Consumer) Run(ctx context.Context, handler Handler) error {
	for {
		err := c.consume(ctx, handler)
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if err == nil {
			return nil
		}

		c.log.Warn().Err(err).Dur("retry_in", c.reconnectWait).Msg("consumidor AMQP desconectado")

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(c.reconnectWait):
		}
	}
}

func (c *Consumer) consume(ctx context.Context, handler Handler) error {
	ch, err := c.dialer.Channel()
	if err != nil {
		return err
	}
	defer ch.Close()

	closeChan := ch.NotifyClose(make(chan *amqp.Error, 1))

	if err := ch.Qos(c.prefetch, 0, false); err != nil {
		return fmt.Errorf("configurar QoS: %w", err)
	}
	if err := c.setup(ch); err != nil {
		return err
	}

	msgs, err := ch.Consume(c.topology.Queue, "", false, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("iniciar consumo: %w", err)
	}
	c.log.Info().Str("queue", c.topology.Queue).Str("routing_key", c.topology.RoutingKey).Msg("consumidor AMQP activo")

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case amqpErr := <-closeChan:
			if amqpErr != nil {
				return fmt.Errorf("canal cerrado: %w", amqpErr)
			}
			return fmt.Errorf("canal cerrado")

		case msg, ok := <-msgs:
			if !ok {
				return fmt.Errorf("canal de mensajes cerrado")
			}
			c.dispatch(ctx, msg, handler)
		}
	}
}

// dispatch: nil -> Ack; ErrRetry -> espera y Nack con requeue; otro error -> Nack a la DLQ.
// Mientras el almacén esté caído los reintentos seguidos espacian el consumo.
func (c *Consumer) dispatch(ctx context.Context, msg amqp.Delivery, handler Handler) {
	err := handler(ctx, msg.Body)
	if !errors.Is(err, ErrRetry) {
		c.retries = 0
	}
	switch {
	case err == nil:
		_ = msg.Ack(false)
	case errors.Is(err, ErrRetry):
		c.retries++
		delay := c.retryDelay(c.retries)
		c.log.Warn().Err(err).Str("message_id", msg.MessageId).Dur("delay", delay).Msg("mensaje reencolado")
		select {
		case <-ctx.Done():
		case <-time.After(delay):
		}
		_ = msg.Nack(false, true)
	default:
		c.log.Error().Err(err).Str("message_id", msg.MessageId).Msg("mensaje enviado a DLQ")
		_ = msg.Nack(false, false)
	}
}

// retryDelay espera del n-ésimo reintento seguido (n >= 1).
func (c *Consumer) retryDelay(n int) time.Duration {
	d := c.retryBase
	for i := 1; i < n && d < c.retryMax; i++ {
		d *= 2
	}
	return min(d, c.retryMax)
}

// setup declara exchange topic, DLQ y la cola principal enlazada.
func (c *Consumer) setup(ch Channel) error {
	t := c.topology
	if err := ch.ExchangeDeclare(t.Exchange, "topic", true, false, false, false, nil); err != nil {
		return fmt.Errorf("declarar exchange %s: %w", t.Exchange, err)
	}
	if err := ch.ExchangeDeclare(t.dlqExchange(), "direct", true, false, false, false, nil); err != nil {
		return fmt.Errorf("declarar exchange DLQ: %w", err)
	}
	if _, err := ch.QueueDeclare(t.dlqQueue(), true, false, false, false, nil); err != nil {
		return fmt.Errorf("declarar DLQ: %w", err)
	}
	if err := ch.QueueBind(t.dlqQueue(), t.RoutingKey, t.dlqExchange(), false, nil); err != nil {
		return fmt.Errorf("enlazar DLQ: %w", err)
	}

	args := amqp.Table{"x-dead-letter-exchange": t.dlqExchange()}
	q, err := ch.QueueDeclare(t.Queue, true, false, false, false, args)
	if err != nil {
		return fmt.Errorf("declarar cola %s: %w", t.Queue, err)
	}
	if err := ch.QueueBind(q.Name, t.RoutingKey, t.Exchange, false, nil); err != nil {
		return fmt.Errorf("enlazar cola %s: %w", t.Queue, err)
	}
	return nil
}
