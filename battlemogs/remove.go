package battlemogs

import "github.com/ajuna-network/ajunacore/host"

func init() {
	Register(TransitionRemove, handleRemove)
}

// handleRemove consumes an owned mogwai regardless of phase (spec.md
// §4.2's Remove).
func handleRemove(h host.Host, req Request) ([]host.Output, error) {
	if err := ownedBy(h, req.Account, req.Mogwai); err != nil {
		return nil, err
	}
	if _, _, err := asMogwai(h, req.Mogwai); err != nil {
		return nil, err
	}
	return []host.Output{host.Consumed(req.Mogwai)}, nil
}
