package usecase

import (
	"context"

	"novacart-support/internal/support"
	"novacart-support/internal/support/repository"
	"novacart-support/pkg/groq"
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

// Mock oracle returning a canned completion
type mockOracle struct {
	response string
	err      error
}

func (m *mockOracle) Complete(ctx context.Context, prompt string) (string, error) {
	return m.response, m.err
}

func (m *mockOracle) ChatCompletion(ctx context.Context, req *groq.Request) (*groq.Response, error) {
	return nil, m.err
}

func (m *mockOracle) Model() string { return "groq-test" }

// Mock store recording the rows handlers write
type mockRepo struct {
	order          support.Order // returned by GetOneOrder
	getErr         error
	createOrderErr error

	createdOrder  *repository.CreateOrderOptions
	markedReturn  *repository.MarkOrderReturnedOptions
	createdReturn *repository.CreateReturnOptions
	createdTicket *repository.CreateTicketOptions
}

func (m *mockRepo) CreateOrder(ctx context.Context, opt repository.CreateOrderOptions) (support.Order, error) {
	if m.createOrderErr != nil {
		return support.Order{}, m.createOrderErr
	}
	m.createdOrder = &opt
	return support.Order{
		ID:          "1",
		OrderID:     opt.OrderID,
		UserID:      opt.UserID,
		ProductName: opt.ProductName,
		Quantity:    opt.Quantity,
		Status:      opt.Status,
	}, nil
}

func (m *mockRepo) GetOneOrder(ctx context.Context, opt repository.GetOneOrderOptions) (support.Order, error) {
	if m.getErr != nil {
		return support.Order{}, m.getErr
	}
	return m.order, nil
}

func (m *mockRepo) MarkOrderReturned(ctx context.Context, opt repository.MarkOrderReturnedOptions) error {
	m.markedReturn = &opt
	return nil
}

func (m *mockRepo) CreateReturn(ctx context.Context, opt repository.CreateReturnOptions) (support.Return, error) {
	m.createdReturn = &opt
	return support.Return{ID: "1", UserID: opt.UserID, OrderID: opt.OrderID, Reason: opt.Reason, Status: opt.Status}, nil
}

func (m *mockRepo) CreateTicket(ctx context.Context, opt repository.CreateTicketOptions) (support.Ticket, error) {
	m.createdTicket = &opt
	return support.Ticket{ID: "1", TicketNum: opt.TicketNum, UserID: opt.UserID, OrderID: opt.OrderID, Issue: opt.Issue, Status: opt.Status}, nil
}

// Mock FAQ retriever
type mockFAQRepo struct {
	docs []repository.FAQDocument
	err  error
}

func (m *mockFAQRepo) SearchFAQ(ctx context.Context, opt repository.SearchFAQOptions) ([]repository.FAQDocument, error) {
	return m.docs, m.err
}
