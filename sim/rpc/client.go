package rpc

import (
	"fmt"
	"image"
	"net/rpc"
	"strconv"
	"time"

	"visynth/vid"
)

type Client struct {
	client *rpc.Client
}

func NewClient(port int) (*Client, error) {
	var (
		client *rpc.Client
		err    error
	)
	const maxretries = 5
	for i := range maxretries {
		if client, err = rpc.DialHTTP("tcp", ":"+strconv.Itoa(port)); err == nil {
			break
		}
		client = nil
		modRPC.WarnZ("dial tcp failed").Error("err", err).Int("retry", i).End()
		time.Sleep(250 * time.Millisecond)
	}

	if client == nil {
		return nil, fmt.Errorf("dial failed max retries: %v", err)
	}

	return &Client{client: client}, nil
}

func (c *Client) Close() error {
	modRPC.DebugZ("closing rpc client").End()
	return c.client.Close()
}

func (c *Client) SetMode(v uint8)      { call(c.client, "display.SetMode", v) }
func (c *Client) SetAmplitude(v uint8) { call(c.client, "display.SetAmplitude", v) }
func (c *Client) Reset()               { call(c.client, "display.Reset", nil) }
func (c *Client) SetPause(pause bool)  { call(c.client, "display.SetPause", pause) }
func (c *Client) Stop()                { call(c.client, "display.Stop", nil) }

func (c *Client) State() vid.State {
	return request[vid.State](c.client, "display.State", nil)
}

func (c *Client) Screenshot() *image.RGBA {
	img := request[image.RGBA](c.client, "display.Screenshot", nil)
	return &img
}

func call(client *rpc.Client, funcname string, args any) {
	request[struct{}](client, funcname, args)
}

func request[T any](client *rpc.Client, funcname string, args any) T {
	if args == nil {
		args = &struct{}{}
	}
	var reply T
	if err := client.Call(funcname, args, &reply); err != nil {
		modRPC.FatalZ("RPC call failed").String("func", funcname).Error("err", err).End()
	}
	return reply
}
