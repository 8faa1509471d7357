package grpc

import (
	"context"

	"google.golang.org/grpc"
)

// Client is a typed WalletService client. Every call is sent with the JSON
// content-subtype.
type Client struct {
	cc grpc.ClientConnInterface
}

// NewClient creates a WalletService client on top of an existing connection
func NewClient(cc grpc.ClientConnInterface) *Client {
	return &Client{cc: cc}
}

func invoke[Req, Resp any](ctx context.Context, c *Client, method string, in *Req, opts []grpc.CallOption) (*Resp, error) {
	out := new(Resp)
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(codecName)}, opts...)
	if err := c.cc.Invoke(ctx, fullMethod(method), in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) ListInstruments(ctx context.Context, in *ListInstrumentsRequest, opts ...grpc.CallOption) (*ListInstrumentsResponse, error) {
	return invoke[ListInstrumentsRequest, ListInstrumentsResponse](ctx, c, "ListInstruments", in, opts)
}

func (c *Client) GetInstrument(ctx context.Context, in *GetInstrumentRequest, opts ...grpc.CallOption) (*InstrumentResponse, error) {
	return invoke[GetInstrumentRequest, InstrumentResponse](ctx, c, "GetInstrument", in, opts)
}

func (c *Client) CreateInstrument(ctx context.Context, in *CreateInstrumentRequest, opts ...grpc.CallOption) (*InstrumentResponse, error) {
	return invoke[CreateInstrumentRequest, InstrumentResponse](ctx, c, "CreateInstrument", in, opts)
}

func (c *Client) UpdateInstrument(ctx context.Context, in *UpdateInstrumentRequest, opts ...grpc.CallOption) (*InstrumentResponse, error) {
	return invoke[UpdateInstrumentRequest, InstrumentResponse](ctx, c, "UpdateInstrument", in, opts)
}

func (c *Client) DeleteInstrument(ctx context.Context, in *DeleteInstrumentRequest, opts ...grpc.CallOption) (*Empty, error) {
	return invoke[DeleteInstrumentRequest, Empty](ctx, c, "DeleteInstrument", in, opts)
}

func (c *Client) GetInstrumentStats(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*InstrumentStatsResponse, error) {
	return invoke[Empty, InstrumentStatsResponse](ctx, c, "GetInstrumentStats", in, opts)
}

func (c *Client) ListTransactions(ctx context.Context, in *ListTransactionsRequest, opts ...grpc.CallOption) (*ListTransactionsResponse, error) {
	return invoke[ListTransactionsRequest, ListTransactionsResponse](ctx, c, "ListTransactions", in, opts)
}

func (c *Client) GetTransaction(ctx context.Context, in *GetTransactionRequest, opts ...grpc.CallOption) (*TransactionResponse, error) {
	return invoke[GetTransactionRequest, TransactionResponse](ctx, c, "GetTransaction", in, opts)
}

func (c *Client) CreateTransaction(ctx context.Context, in *CreateTransactionRequest, opts ...grpc.CallOption) (*TransactionResponse, error) {
	return invoke[CreateTransactionRequest, TransactionResponse](ctx, c, "CreateTransaction", in, opts)
}

func (c *Client) GetTransactionStats(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*TransactionStatsResponse, error) {
	return invoke[Empty, TransactionStatsResponse](ctx, c, "GetTransactionStats", in, opts)
}

func (c *Client) ListNotes(ctx context.Context, in *ListNotesRequest, opts ...grpc.CallOption) (*ListNotesResponse, error) {
	return invoke[ListNotesRequest, ListNotesResponse](ctx, c, "ListNotes", in, opts)
}

func (c *Client) GetNote(ctx context.Context, in *GetNoteRequest, opts ...grpc.CallOption) (*NoteResponse, error) {
	return invoke[GetNoteRequest, NoteResponse](ctx, c, "GetNote", in, opts)
}

func (c *Client) CreateNote(ctx context.Context, in *CreateNoteRequest, opts ...grpc.CallOption) (*NoteResponse, error) {
	return invoke[CreateNoteRequest, NoteResponse](ctx, c, "CreateNote", in, opts)
}

func (c *Client) UpdateNote(ctx context.Context, in *UpdateNoteRequest, opts ...grpc.CallOption) (*NoteResponse, error) {
	return invoke[UpdateNoteRequest, NoteResponse](ctx, c, "UpdateNote", in, opts)
}

func (c *Client) DeleteNote(ctx context.Context, in *DeleteNoteRequest, opts ...grpc.CallOption) (*Empty, error) {
	return invoke[DeleteNoteRequest, Empty](ctx, c, "DeleteNote", in, opts)
}

func (c *Client) GetComment(ctx context.Context, in *GetCommentRequest, opts ...grpc.CallOption) (*CommentResponse, error) {
	return invoke[GetCommentRequest, CommentResponse](ctx, c, "GetComment", in, opts)
}

func (c *Client) AddComment(ctx context.Context, in *AddCommentRequest, opts ...grpc.CallOption) (*CommentResponse, error) {
	return invoke[AddCommentRequest, CommentResponse](ctx, c, "AddComment", in, opts)
}

func (c *Client) Info(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*InfoResponse, error) {
	return invoke[Empty, InfoResponse](ctx, c, "Info", in, opts)
}
