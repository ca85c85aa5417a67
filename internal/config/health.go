package config

import (
	"fmt"
	"os"

	"github.com/qdm12/gosettings"
	"github.com/qdm12/gosettings/reader"
	"github.com/qdm12/gosettings/validate"
	"github.com/qdm12/gotree"
)

type Health struct {
	Enabled       *bool
	ServerAddress *string
}

func (h *Health) SetDefaults() {
	h.Enabled = gosettings.DefaultPointer(h.Enabled, true)
	h.ServerAddress = gosettings.DefaultPointer(h.ServerAddress, "127.0.0.1:9999")
}

func (h Health) Validate() (err error) {
	err = validate.ListeningAddress(*h.ServerAddress, os.Getuid())
	if err != nil {
		return fmt.Errorf("server listening address: %w", err)
	}

	return nil
}

func (h Health) String() string {
	return h.toLinesNode().String()
}

func (h Health) toLinesNode() *gotree.Node {
	if !*h.Enabled {
		return gotree.New("Health: disabled")
	}
	node := gotree.New("Health")
	node.Appendf("Server listening address: %s", *h.ServerAddress)
	return node
}

func (h *Health) Read(reader *reader.Reader) (err error) {
	h.Enabled, err = reader.BoolPtr("HEALTH_SERVER_ENABLED")
	if err != nil {
		return err
	}
	h.ServerAddress = reader.Get("HEALTH_SERVER_ADDRESS")
	return nil
}
