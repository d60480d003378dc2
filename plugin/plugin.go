// Package plugin exposes revision date resolution to a documentation site
// host over hashicorp/go-plugin.
//
// The host starts the gitrevdate binary with the serve command and talks to
// it over net/rpc.
package plugin

import (
	"net/rpc"

	goplugin "github.com/hashicorp/go-plugin"

	"github.com/PegasisForever/mkdocs-git-revision-date-localized-plugin/internal/dates"
)

// PluginName is the key the host dispenses.
const PluginName = "revision_date"

// Handshake is shared by host and plugin. It is not a security measure.
var Handshake = goplugin.HandshakeConfig{
	ProtocolVersion:  1,
	MagicCookieKey:   "GITREVDATE_PLUGIN",
	MagicCookieValue: "3c1f0a9e-revision-date",
}

// PluginMap is the plugin set served and dispensed.
var PluginMap = map[string]goplugin.Plugin{
	PluginName: &RevisionDatePlugin{},
}

// RevisionDater resolves the dates of documentation files.
type RevisionDater interface {
	RevisionDate(path string) (dates.Formats, error)
	CreationDate(path string) (dates.Formats, error)
}

// RevisionDatePlugin implements goplugin.Plugin for RevisionDater.
type RevisionDatePlugin struct {
	// Impl is only set on the plugin side.
	Impl RevisionDater
}

// Server returns the net/rpc server for the plugin side.
func (p *RevisionDatePlugin) Server(*goplugin.MuxBroker) (interface{}, error) {
	return &RPCServer{Impl: p.Impl}, nil
}

// Client returns the RevisionDater used on the host side.
func (p *RevisionDatePlugin) Client(_ *goplugin.MuxBroker, c *rpc.Client) (interface{}, error) {
	return &RPCClient{client: c}, nil
}

// DateArgs is the request of both RPC methods.
type DateArgs struct {
	Path string
}

// DateReply carries the formats or the error message.
type DateReply struct {
	Formats dates.Formats
	Err     string
}

// RemoteError is an error returned by the plugin process.
type RemoteError struct {
	Message string
}

func (e *RemoteError) Error() string {
	return e.Message
}

// RPCServer serves a RevisionDater over net/rpc.
type RPCServer struct {
	Impl RevisionDater
}

// RevisionDate answers the Plugin.RevisionDate call. Resolver errors are
// sent back in the reply, not as an RPC failure.
func (s *RPCServer) RevisionDate(args DateArgs, reply *DateReply) error {
	formats, err := s.Impl.RevisionDate(args.Path)
	fillReply(reply, formats, err)
	return nil
}

// CreationDate answers the Plugin.CreationDate call.
func (s *RPCServer) CreationDate(args DateArgs, reply *DateReply) error {
	formats, err := s.Impl.CreationDate(args.Path)
	fillReply(reply, formats, err)
	return nil
}

func fillReply(reply *DateReply, formats dates.Formats, err error) {
	reply.Formats = formats
	if err != nil {
		reply.Err = err.Error()
	}
}

// RPCClient is the host side RevisionDater.
type RPCClient struct {
	client *rpc.Client
}

// RevisionDate returns the last-modified date of path from the plugin.
func (c *RPCClient) RevisionDate(path string) (dates.Formats, error) {
	return c.call("Plugin.RevisionDate", path)
}

// CreationDate returns the creation date of path from the plugin.
func (c *RPCClient) CreationDate(path string) (dates.Formats, error) {
	return c.call("Plugin.CreationDate", path)
}

func (c *RPCClient) call(method, path string) (dates.Formats, error) {
	var reply DateReply
	if err := c.client.Call(method, DateArgs{Path: path}, &reply); err != nil {
		return dates.Formats{}, err
	}
	if reply.Err != "" {
		return dates.Formats{}, &RemoteError{Message: reply.Err}
	}
	return reply.Formats, nil
}

var _ RevisionDater = (*RPCClient)(nil)
