package context

import (
	"context"
)

type Context interface {
	context.Context
	Session() *Session
}

func NewContext() Context {
	return &sentinelContext{
		Context: context.Background(),
		session: NewSession(),
	}
}

type sentinelContext struct {
	context.Context
	session *Session
}

func (c *sentinelContext) Session() *Session {
	return c.session
}
