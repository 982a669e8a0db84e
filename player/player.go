// Package player provides account identity for embedders driving the game
// engines: an ed25519 key pair, the address derived from it, and a
// detached-signature envelope a host can verify before invoking a
// transition. Grounded on the teacher's wallet package, generalized from
// transaction-signing to transition-request-signing.
package player

import (
	"encoding/json"

	"github.com/ajuna-network/ajunacore/crypto"
)

// Player holds a key pair identifying one account.
type Player struct {
	priv crypto.PrivateKey
	pub  crypto.PublicKey
}

// New creates a Player from an existing private key.
func New(priv crypto.PrivateKey) *Player {
	return &Player{priv: priv, pub: priv.Public()}
}

// Generate creates a Player with a freshly generated key pair.
func Generate() (*Player, error) {
	priv, _, err := crypto.GenerateKeyPair()
	if err != nil {
		return nil, err
	}
	return New(priv), nil
}

// PrivKey returns the raw private key (handle with care).
func (p *Player) PrivKey() crypto.PrivateKey {
	return p.priv
}

// Account returns the hex-encoded public key, used as an account
// identifier throughout host.Host and battlemogs.Request/player turns.
func (p *Player) Account() string {
	return p.pub.Hex()
}

// Address returns the short human-readable address (first 20 bytes of
// SHA-256(pubkey)).
func (p *Player) Address() string {
	return p.pub.Address()
}

// SignedRequest envelopes an arbitrary transition payload with the
// account that must have authorized it.
type SignedRequest struct {
	Account   string `json:"account"`
	Payload   []byte `json:"payload"`
	Signature string `json:"signature"`
}

// Sign produces a SignedRequest an embedder can forward to a host; the
// host verifies it with Verify before invoking a transition.
func (p *Player) Sign(payload any) (*SignedRequest, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	sig := crypto.Sign(p.priv, data)
	return &SignedRequest{Account: p.Account(), Payload: data, Signature: sig}, nil
}

// Verify checks that req.Signature is a valid ed25519 signature over
// req.Payload by req.Account.
func Verify(req *SignedRequest) error {
	pub, err := crypto.PubKeyFromHex(req.Account)
	if err != nil {
		return err
	}
	return crypto.Verify(pub, req.Payload, req.Signature)
}
