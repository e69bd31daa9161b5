package main

import (
	"context"
	"io"
	"os"

	"github.com/signadot/flowdoc"
	"github.com/signadot/flowdoc/catalog"

	"go.lsp.dev/jsonrpc2"
	"go.lsp.dev/protocol"
	"go.uber.org/zap"
)

const (
	lsName     = "flowdoc-lsp"
	catalogEnv = "FLOWDOC_CATALOG"
)

var (
	version = "0.0.1"
)

func main() {
	ctx := context.Background()
	logger, err := zap.NewDevelopment()
	if err != nil {
		logger = zap.NewNop()
	}
	defer logger.Sync()

	stream := jsonrpc2.NewStream(&stdioReadWriteCloser{
		read:  os.Stdin,
		write: os.Stdout,
	})
	server := NewServer(loadTool(logger), logger)
	_, conn, client := protocol.NewServer(ctx, server, stream, logger)
	server.client = client
	<-conn.Done()
	if err := conn.Err(); err != nil {
		logger.Info("connection closed", zap.Error(err))
	}
}

// loadTool loads the catalog named by $FLOWDOC_CATALOG, falling back to
// an empty one.
func loadTool(logger *zap.Logger) *flowdoc.Tool {
	dir := os.Getenv(catalogEnv)
	if dir == "" {
		logger.Warn("no catalog configured", zap.String("env", catalogEnv))
		return flowdoc.NewTool(nil)
	}
	reg, err := catalog.LoadDir(dir)
	if err != nil {
		logger.Error("cannot load catalog", zap.String("dir", dir), zap.Error(err))
		return flowdoc.NewTool(nil)
	}
	logger.Info("loaded catalog", zap.String("dir", dir), zap.Int("entries", reg.Len()))
	return flowdoc.NewTool(reg)
}

type stdioReadWriteCloser struct {
	read  io.Reader
	write io.Writer
}

func (s *stdioReadWriteCloser) Read(p []byte) (n int, err error) {
	return s.read.Read(p)
}

func (s *stdioReadWriteCloser) Write(p []byte) (n int, err error) {
	return s.write.Write(p)
}

func (s *stdioReadWriteCloser) Close() error {
	return nil
}
