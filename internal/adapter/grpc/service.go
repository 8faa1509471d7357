package grpc

import (
	"context"

	"google.golang.org/grpc"
)

// ServiceName is the fully qualified gRPC service name
const ServiceName = "wallet.v1.WalletService"

// WalletServiceServer is the server API for WalletService
type WalletServiceServer interface {
	ListInstruments(context.Context, *ListInstrumentsRequest) (*ListInstrumentsResponse, error)
	GetInstrument(context.Context, *GetInstrumentRequest) (*InstrumentResponse, error)
	CreateInstrument(context.Context, *CreateInstrumentRequest) (*InstrumentResponse, error)
	UpdateInstrument(context.Context, *UpdateInstrumentRequest) (*InstrumentResponse, error)
	DeleteInstrument(context.Context, *DeleteInstrumentRequest) (*Empty, error)
	GetInstrumentStats(context.Context, *Empty) (*InstrumentStatsResponse, error)

	ListTransactions(context.Context, *ListTransactionsRequest) (*ListTransactionsResponse, error)
	GetTransaction(context.Context, *GetTransactionRequest) (*TransactionResponse, error)
	CreateTransaction(context.Context, *CreateTransactionRequest) (*TransactionResponse, error)
	GetTransactionStats(context.Context, *Empty) (*TransactionStatsResponse, error)

	ListNotes(context.Context, *ListNotesRequest) (*ListNotesResponse, error)
	GetNote(context.Context, *GetNoteRequest) (*NoteResponse, error)
	CreateNote(context.Context, *CreateNoteRequest) (*NoteResponse, error)
	UpdateNote(context.Context, *UpdateNoteRequest) (*NoteResponse, error)
	DeleteNote(context.Context, *DeleteNoteRequest) (*Empty, error)
	GetComment(context.Context, *GetCommentRequest) (*CommentResponse, error)
	AddComment(context.Context, *AddCommentRequest) (*CommentResponse, error)

	Info(context.Context, *Empty) (*InfoResponse, error)
}

// WalletServiceDesc describes WalletService for grpc.Server.RegisterService
var WalletServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*WalletServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		unary("ListInstruments", WalletServiceServer.ListInstruments),
		unary("GetInstrument", WalletServiceServer.GetInstrument),
		unary("CreateInstrument", WalletServiceServer.CreateInstrument),
		unary("UpdateInstrument", WalletServiceServer.UpdateInstrument),
		unary("DeleteInstrument", WalletServiceServer.DeleteInstrument),
		unary("GetInstrumentStats", WalletServiceServer.GetInstrumentStats),
		unary("ListTransactions", WalletServiceServer.ListTransactions),
		unary("GetTransaction", WalletServiceServer.GetTransaction),
		unary("CreateTransaction", WalletServiceServer.CreateTransaction),
		unary("GetTransactionStats", WalletServiceServer.GetTransactionStats),
		unary("ListNotes", WalletServiceServer.ListNotes),
		unary("GetNote", WalletServiceServer.GetNote),
		unary("CreateNote", WalletServiceServer.CreateNote),
		unary("UpdateNote", WalletServiceServer.UpdateNote),
		unary("DeleteNote", WalletServiceServer.DeleteNote),
		unary("GetComment", WalletServiceServer.GetComment),
		unary("AddComment", WalletServiceServer.AddComment),
		unary("Info", WalletServiceServer.Info),
	},
	Streams: []grpc.StreamDesc{},
}

// RegisterWalletServiceServer registers srv on s
func RegisterWalletServiceServer(s grpc.ServiceRegistrar, srv WalletServiceServer) {
	s.RegisterService(&WalletServiceDesc, srv)
}

// fullMethod returns the /service/method path of a WalletService call
func fullMethod(method string) string {
	return "/" + ServiceName + "/" + method
}

// unary builds the method descriptor for one WalletService call, decoding the
// request and running it through the server's interceptor chain.
func unary[Req, Resp any](method string, call func(WalletServiceServer, context.Context, *Req) (*Resp, error)) grpc.MethodDesc {
	name := fullMethod(method)

	return grpc.MethodDesc{
		MethodName: method,
		Handler: func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
			in := new(Req)
			if err := dec(in); err != nil {
				return nil, err
			}
			if interceptor == nil {
				return call(srv.(WalletServiceServer), ctx, in)
			}
			handler := func(ctx context.Context, req any) (any, error) {
				return call(srv.(WalletServiceServer), ctx, req.(*Req))
			}
			return interceptor(ctx, in, &grpc.UnaryServerInfo{Server: srv, FullMethod: name}, handler)
		},
	}
}
