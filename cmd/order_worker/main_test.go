package main

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"testing"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/store-admin-api/config"
	"github.com/oksasatya/store-admin-api/pkg/mailer"
)

type ackCall struct {
	op      string
	requeue bool
}

type fakeAcker struct {
	calls []ackCall
}

func (f *fakeAcker) Ack(uint64, bool) error {
	f.calls = append(f.calls, ackCall{op: "ack"})
	return nil
}

func (f *fakeAcker) Nack(_ uint64, _ bool, requeue bool) error {
	f.calls = append(f.calls, ackCall{op: "nack", requeue: requeue})
	return nil
}

func (f *fakeAcker) Reject(_ uint64, requeue bool) error {
	f.calls = append(f.calls, ackCall{op: "reject", requeue: requeue})
	return nil
}

type fakeSender struct {
	err  error
	sent int
}

func (f *fakeSender) Send(context.Context, string, string, string, string) error {
	f.sent++
	return f.err
}

func testLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func mailConfig() *config.Config {
	return &config.Config{MailSendEnabled: true, OrderNotifyEmail: "owner@example.com"}
}

func jobBody(t *testing.T) []byte {
	t.Helper()
	b, err := json.Marshal(mailer.OrderJob{
		OrderID:    "ord-1",
		StoreID:    "store-1",
		ProductIDs: []string{"p1", "p2"},
		CreatedAt:  time.Now(),
	})
	require.NoError(t, err)
	return b
}

func TestHandleMalformedJobDropped(t *testing.T) {
	acker := &fakeAcker{}
	sender := &fakeSender{}
	d := amqp.Delivery{Acknowledger: acker, Body: []byte("{not json")}

	handle(context.Background(), testLogger(), sender, mailConfig(), d)

	require.Equal(t, []ackCall{{op: "nack", requeue: false}}, acker.calls)
	require.Zero(t, sender.sent)
}

func TestHandleMailDisabledAcked(t *testing.T) {
	acker := &fakeAcker{}
	sender := &fakeSender{}
	cfg := &config.Config{MailSendEnabled: false}
	d := amqp.Delivery{Acknowledger: acker, Body: jobBody(t)}

	handle(context.Background(), testLogger(), sender, cfg, d)

	require.Equal(t, []ackCall{{op: "ack"}}, acker.calls)
	require.Zero(t, sender.sent)
}

func TestHandleMailFailureRequeuedOnceThenDropped(t *testing.T) {
	prev := requeueDelay
	requeueDelay = 0
	defer func() { requeueDelay = prev }()

	acker := &fakeAcker{}
	sender := &fakeSender{err: errors.New("mailgun down")}

	first := amqp.Delivery{Acknowledger: acker, Body: jobBody(t)}
	handle(context.Background(), testLogger(), sender, mailConfig(), first)
	require.Equal(t, []ackCall{{op: "nack", requeue: true}}, acker.calls)

	redelivered := amqp.Delivery{Acknowledger: acker, Body: jobBody(t), Redelivered: true}
	handle(context.Background(), testLogger(), sender, mailConfig(), redelivered)
	require.Equal(t, ackCall{op: "nack", requeue: false}, acker.calls[1], "second failure must drop, not requeue")
}

func TestHandleSuccessAcked(t *testing.T) {
	acker := &fakeAcker{}
	sender := &fakeSender{}
	d := amqp.Delivery{Acknowledger: acker, Body: jobBody(t)}

	handle(context.Background(), testLogger(), sender, mailConfig(), d)

	require.Equal(t, []ackCall{{op: "ack"}}, acker.calls)
	require.Equal(t, 1, sender.sent)
}
