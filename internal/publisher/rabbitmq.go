// Package publisher emits stored-article events for downstream consumers
// (summarizer, search indexer). Publishing is optional and best-effort:
// the ingestion pipeline never fails a cycle over a publish error.
package publisher

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"pressekiosk/internal/domain"
	"pressekiosk/internal/normalize"
)

type RabbitMQ struct {
	conn       *amqp.Connection
	channel    *amqp.Channel
	exchange   string
	routingKey string
	logger     *slog.Logger
}

type Config struct {
	URL        string
	Exchange   string
	RoutingKey string
	QueueName  string
}

func NewRabbitMQ(cfg Config, logger *slog.Logger) (*RabbitMQ, error) {
	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("connect to rabbitmq: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}

	err = ch.ExchangeDeclare(
		cfg.Exchange,
		"direct",
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("declare exchange: %w", err)
	}

	q, err := ch.QueueDeclare(
		cfg.QueueName,
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("declare queue: %w", err)
	}

	err = ch.QueueBind(
		q.Name,
		cfg.RoutingKey,
		cfg.Exchange,
		false,
		nil,
	)
	if err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("bind queue: %w", err)
	}

	logger.Info("connected to rabbitmq",
		"exchange", cfg.Exchange,
		"queue", cfg.QueueName,
		"routing_key", cfg.RoutingKey,
	)

	return &RabbitMQ{
		conn:       conn,
		channel:    ch,
		exchange:   cfg.Exchange,
		routingKey: cfg.RoutingKey,
		logger:     logger.With("component", "publisher"),
	}, nil
}

// ArticleStoredMessage is the wire format for stored-article events.
// Category carries the normalized vocabulary so consumers do not need the
// raw feed category tables.
type ArticleStoredMessage struct {
	ArticleID     string     `json:"article_id"`
	MediaSourceID string     `json:"media_source_id"`
	PublicationID *string    `json:"publication_id,omitempty"`
	Title         string     `json:"title"`
	ArticleURL    *string    `json:"article_url,omitempty"`
	ImageURL      *string    `json:"image_url,omitempty"`
	Category      string     `json:"category"`
	PublishedAt   *time.Time `json:"published_at,omitempty"`
	StoredAt      time.Time  `json:"stored_at"`
}

func (r *RabbitMQ) Publish(ctx context.Context, article *domain.Article, category normalize.StandardCategory) error {
	msg := ArticleStoredMessage{
		ArticleID:     article.ID,
		MediaSourceID: article.MediaSourceID,
		PublicationID: article.PublicationID,
		Title:         article.Title,
		ArticleURL:    article.ArticleURL,
		ImageURL:      article.ImageURL,
		Category:      string(category),
		PublishedAt:   article.PublishedAt,
		StoredAt:      time.Now().UTC(),
	}

	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("marshal message: %w", err)
	}

	err = r.channel.PublishWithContext(
		ctx,
		r.exchange,
		r.routingKey,
		false,
		false,
		amqp.Publishing{
			DeliveryMode: amqp.Persistent,
			ContentType:  "application/json",
			Body:         body,
			Timestamp:    time.Now(),
		},
	)
	if err != nil {
		return fmt.Errorf("publish message: %w", err)
	}

	r.logger.Debug("published article event", "article_id", article.ID)
	return nil
}

func (r *RabbitMQ) Close() error {
	if r.channel != nil {
		r.channel.Close()
	}
	if r.conn != nil {
		return r.conn.Close()
	}
	return nil
}
