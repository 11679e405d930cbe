package allocation

import "time"

// Outcomes of a processor run, used as metric labels
const (
	OutcomeAccepted = "accepted"
	OutcomeRejected = "rejected"
	OutcomeRemoved  = "removed"
	OutcomeNoop     = "noop"
)

// Option дополнительные изменения бронирования, сохраняемые вместе со статусом
type Option func(*change)

type change struct {
	updatedBy  *string
	updatedAt  *time.Time
	comment    *string
	setComment bool
	message    *string
}

// WithStamp записывает автора и время изменения
func WithStamp(userID string, at time.Time) Option {
	return func(c *change) {
		c.updatedBy = &userID
		c.updatedAt = &at
	}
}

// WithComment заменяет комментарий бронирования
func WithComment(comment *string) Option {
	return func(c *change) {
		c.comment = comment
		c.setComment = true
	}
}

// WithMessage задает сообщение статуса вместо вычисленного сервисом
func WithMessage(message string) Option {
	return func(c *change) {
		c.message = &message
	}
}

func collect(opts []Option) change {
	var c change
	for _, opt := range opts {
		opt(&c)
	}
	return c
}
