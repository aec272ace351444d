package ipc

import (
	"net"
	"net/rpc"
	"net/rpc/jsonrpc"
	"time"

	"mediaconv/internal/queue"
)

const dialTimeout = 2 * time.Second

// Client provides RPC access to the daemon.
type Client struct {
	conn   net.Conn
	client *rpc.Client
}

// Dial connects to the IPC server at the given socket path.
func Dial(path string) (*Client, error) {
	conn, err := net.DialTimeout("unix", path, dialTimeout)
	if err != nil {
		return nil, err
	}
	rpcClient := rpc.NewClientWithCodec(jsonrpc.NewClientCodec(conn))
	return &Client{conn: conn, client: rpcClient}, nil
}

// Close closes the underlying connection.
func (c *Client) Close() error {
	if c.client != nil {
		_ = c.client.Close()
	}
	if c.conn != nil {
		return c.conn.Close()
	}
	return nil
}

func (c *Client) call(method string, req, resp any) error {
	return c.client.Call(ServiceName+"."+method, req, resp)
}

// Status retrieves the daemon status.
func (c *Client) Status() (*StatusResponse, error) {
	var resp StatusResponse
	if err := c.call("Status", Empty{}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Shutdown asks the daemon process to exit.
func (c *Client) Shutdown() (*ShutdownResponse, error) {
	var resp ShutdownResponse
	if err := c.call("Shutdown", Empty{}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// PickFiles runs the daemon's file picker.
func (c *Client) PickFiles() ([]queue.Item, error) {
	var resp ItemsResponse
	if err := c.call("PickFiles", Empty{}, &resp); err != nil {
		return nil, err
	}
	return resp.Items, nil
}

// PickFolder runs the daemon's folder picker.
func (c *Client) PickFolder() ([]queue.Item, error) {
	var resp ItemsResponse
	if err := c.call("PickFolder", Empty{}, &resp); err != nil {
		return nil, err
	}
	return resp.Items, nil
}

// PickOutput runs the output directory picker.
func (c *Client) PickOutput() (string, error) {
	var resp PathResponse
	if err := c.call("PickOutput", Empty{}, &resp); err != nil {
		return "", err
	}
	return resp.Path, nil
}

// PickFFmpeg runs the ffmpeg binary picker.
func (c *Client) PickFFmpeg() (string, error) {
	var resp PathResponse
	if err := c.call("PickFFmpeg", Empty{}, &resp); err != nil {
		return "", err
	}
	return resp.Path, nil
}

// OpenOutput reveals path in the desktop file browser.
func (c *Client) OpenOutput(path string) error {
	return c.call("OpenOutput", OpenOutputRequest{Path: path}, &Empty{})
}

// OpenSettingsWindow opens or focuses the settings window.
func (c *Client) OpenSettingsWindow() error {
	return c.call("OpenSettingsWindow", Empty{}, &Empty{})
}

// CheckFFmpeg reports ffmpeg readiness.
func (c *Client) CheckFFmpeg() (bool, error) {
	var resp CheckResponse
	if err := c.call("CheckFFmpeg", Empty{}, &resp); err != nil {
		return false, err
	}
	return resp.OK, nil
}

// StartConversion submits a conversion start request.
func (c *Client) StartConversion(req StartConversionRequest) error {
	return c.call("StartConversion", req, &Empty{})
}

// StopConversion submits a conversion stop request.
func (c *Client) StopConversion() error {
	return c.call("StopConversion", Empty{}, &Empty{})
}

// CloseWindow reports that the UI closed the labelled window.
func (c *Client) CloseWindow(label string) (bool, error) {
	var resp CloseWindowResponse
	if err := c.call("CloseWindow", CloseWindowRequest{Label: label}, &resp); err != nil {
		return false, err
	}
	return resp.Closed, nil
}
