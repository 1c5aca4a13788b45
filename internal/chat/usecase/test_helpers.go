package usecase

import (
	"context"

	"novacart-support/internal/model"
	"novacart-support/internal/support"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// Mock oracle for the router's classification fallback
type mockOracle struct {
	response string
	err      error
}

func (m *mockOracle) Complete(ctx context.Context, prompt string) (string, error) {
	return m.response, m.err
}

// Mock task handlers recording every dispatch
type dispatchRecord struct {
	Intent model.Intent
	Input  support.HandlerInput
}

type mockSupport struct {
	dispatches []dispatchRecord

	// orderFlowOpen makes PlaceOrder report an open order flow.
	orderFlowOpen bool
}

func (m *mockSupport) record(intent model.Intent, in support.HandlerInput) {
	m.dispatches = append(m.dispatches, dispatchRecord{Intent: intent, Input: in})
}

func (m *mockSupport) PlaceOrder(ctx context.Context, sc model.Scope, in support.HandlerInput) (support.HandlerOutput, error) {
	m.record(model.IntentOrder, in)
	return support.HandlerOutput{Reply: "order reply", OrderContext: m.orderFlowOpen}, nil
}

func (m *mockSupport) TrackOrder(ctx context.Context, sc model.Scope, in support.HandlerInput) (support.HandlerOutput, error) {
	m.record(model.IntentTrack, in)
	return support.HandlerOutput{Reply: "track reply"}, nil
}

func (m *mockSupport) ReturnOrder(ctx context.Context, sc model.Scope, in support.HandlerInput) (support.HandlerOutput, error) {
	m.record(model.IntentReturn, in)
	return support.HandlerOutput{Reply: "return reply"}, nil
}

func (m *mockSupport) RaiseTicket(ctx context.Context, sc model.Scope, in support.HandlerInput) (support.HandlerOutput, error) {
	m.record(model.IntentTicket, in)
	return support.HandlerOutput{Reply: "ticket reply"}, nil
}

func (m *mockSupport) AnswerFAQ(ctx context.Context, sc model.Scope, in support.HandlerInput) (support.HandlerOutput, error) {
	m.record(model.IntentFAQ, in)
	return support.HandlerOutput{Reply: "faq reply"}, nil
}

func (m *mockSupport) last() dispatchRecord {
	return m.dispatches[len(m.dispatches)-1]
}

// Mock conversation memory
type mockMemory struct {
	appended map[string][]model.Turn
	err      error
}

func newMockMemory() *mockMemory {
	return &mockMemory{appended: make(map[string][]model.Turn)}
}

func (m *mockMemory) AppendTurns(ctx context.Context, sessionID string, turns []model.Turn) error {
	if m.err != nil {
		return m.err
	}
	m.appended[sessionID] = append(m.appended[sessionID], turns...)
	return nil
}

func (m *mockMemory) LoadTurns(ctx context.Context, sessionID string, limit int) ([]model.Turn, error) {
	return m.appended[sessionID], nil
}
