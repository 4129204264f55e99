// Package thrift implements dispatch.Gateway over a direct Thrift
// connection to a task executor. Grounded on worker/client's simpleClient,
// which dials via a dialer.Dialer and calls through generated stubs; this
// package has no generated IDL (none exists in this repo), so it writes
// and reads the submitTask/cancelTask Thrift messages directly against
// apache/thrift's TProtocol rather than through codegen.
package thrift

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/apache/thrift/lib/go/thrift"

	"github.com/scootdev/dispatch/dispatch"
	"github.com/scootdev/dispatch/dialer"
)

const (
	methodSubmitTask = "submitTask"
	methodCancelTask = "cancelTask"
)

// Client is a dispatch.Gateway that talks to one task executor over a
// single persistent Thrift connection, opened lazily on first use.
type Client struct {
	addr   string
	dialer dialer.Dialer

	transport thrift.TTransport
	protocol  thrift.TProtocol
	seqID     int32
}

// NewClient builds a Client that dials addr through d on first RPC.
func NewClient(d dialer.Dialer, addr string) *Client {
	return &Client{addr: addr, dialer: d}
}

func (c *Client) connect() (thrift.TProtocol, error) {
	if c.protocol != nil {
		return c.protocol, nil
	}
	transport, protocolFactory, err := c.dialer.Dial(c.addr)
	if err != nil {
		return nil, fmt.Errorf("dialing task executor %s: %v", c.addr, err)
	}
	c.transport = transport
	c.protocol = protocolFactory.GetProtocol(transport)
	return c.protocol, nil
}

// Close releases the underlying connection, if one was opened.
func (c *Client) Close() error {
	if c.transport == nil {
		return nil
	}
	return c.transport.Close()
}

// SubmitTask sends payload (expected to be JSON-serializable) to the
// executor's submitTask RPC and waits for acknowledgement.
func (c *Client) SubmitTask(ctx context.Context, payload dispatch.ExecutorPayload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshaling task payload: %v", err)
	}
	return c.call(methodSubmitTask, body)
}

// CancelTask sends workerID to the executor's cancelTask RPC.
func (c *Client) CancelTask(ctx context.Context, workerID string) error {
	return c.call(methodCancelTask, []byte(workerID))
}

// call writes a Thrift CALL message with a single binary argument field and
// reads back a REPLY, returning an error if the executor responded with an
// EXCEPTION message. The fields of a REPLY are read and skipped; their
// values are not inspected.
func (c *Client) call(method string, arg []byte) error {
	proto, err := c.connect()
	if err != nil {
		return err
	}
	c.seqID++
	seqID := c.seqID

	if err := proto.WriteMessageBegin(method, thrift.CALL, seqID); err != nil {
		return fmt.Errorf("writing %s request: %v", method, err)
	}
	if err := proto.WriteStructBegin(method + "_args"); err != nil {
		return err
	}
	if err := proto.WriteFieldBegin("request", thrift.STRING, 1); err != nil {
		return err
	}
	if err := proto.WriteBinary(arg); err != nil {
		return err
	}
	if err := proto.WriteFieldEnd(); err != nil {
		return err
	}
	if err := proto.WriteFieldStop(); err != nil {
		return err
	}
	if err := proto.WriteStructEnd(); err != nil {
		return err
	}
	if err := proto.WriteMessageEnd(); err != nil {
		return err
	}
	if err := proto.Flush(); err != nil {
		return fmt.Errorf("flushing %s request: %v", method, err)
	}

	_, msgType, _, err := proto.ReadMessageBegin()
	if err != nil {
		return fmt.Errorf("reading %s response: %v", method, err)
	}
	defer proto.ReadMessageEnd()

	if msgType == thrift.EXCEPTION {
		exception := thrift.NewTApplicationException(thrift.UNKNOWN_APPLICATION_EXCEPTION, "")
		exception, err := exception.Read(proto)
		if err != nil {
			return fmt.Errorf("%s failed and the exception could not be decoded: %v", method, err)
		}
		return fmt.Errorf("%s rejected: %v", method, exception.Error())
	}

	if _, err := proto.ReadStructBegin(); err != nil {
		return err
	}
	defer proto.ReadStructEnd()
	for {
		_, fieldType, _, err := proto.ReadFieldBegin()
		if err != nil {
			return err
		}
		if fieldType == thrift.STOP {
			break
		}
		if err := proto.Skip(fieldType); err != nil {
			return err
		}
		if err := proto.ReadFieldEnd(); err != nil {
			return err
		}
	}
	return nil
}

var _ dispatch.Gateway = (*Client)(nil)
