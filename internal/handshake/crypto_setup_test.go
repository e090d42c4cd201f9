package handshake

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/quicwire/qconn/internal/protocol"
)

func TestNewInitialCryptoSetupInstallsOnlyInitialLevelKeys(t *testing.T) {
	cs := NewInitialCryptoSetup(protocol.ParseConnectionID([]byte{1, 2, 3, 4}))

	_, ok := cs.GetSealer(protocol.EncryptionInitial)
	require.True(t, ok)
	_, ok = cs.GetOpener(protocol.EncryptionInitial)
	require.True(t, ok)

	_, ok = cs.GetSealer(protocol.Encryption1RTT)
	require.False(t, ok)
	_, ok = cs.GetOpener(protocol.EncryptionHandshake)
	require.False(t, ok)
}

func TestCryptoSetupHandshakeConfirmedDefaultsFalse(t *testing.T) {
	cs := NewInitialCryptoSetup(protocol.ParseConnectionID([]byte{1}))
	require.False(t, cs.HandshakeConfirmed())

	cs.SetHandshakeConfirmed()
	require.True(t, cs.HandshakeConfirmed())
}

func TestCryptoSetupDiscardKeysRemovesBothSealerAndOpener(t *testing.T) {
	cs := NewInitialCryptoSetup(protocol.ParseConnectionID([]byte{1}))

	cs.DiscardKeys(protocol.EncryptionInitial)

	_, ok := cs.GetSealer(protocol.EncryptionInitial)
	require.False(t, ok)
	_, ok = cs.GetOpener(protocol.EncryptionInitial)
	require.False(t, ok)
}

func TestAEADKeysWithoutAnAEADRoundTripsPlaintext(t *testing.T) {
	cs := NewInitialCryptoSetup(protocol.ParseConnectionID([]byte{1}))
	sealer, _ := cs.GetSealer(protocol.EncryptionInitial)
	opener, _ := cs.GetOpener(protocol.EncryptionInitial)

	sealed := sealer.Seal(nil, []byte("hello"), 1, []byte("ad"))
	opened, err := opener.Open(nil, sealed, 1, []byte("ad"))

	require.NoError(t, err)
	require.Equal(t, []byte("hello"), opened)
	require.Equal(t, 16, sealer.Overhead(), "a nil-AEAD aeadKeys still reports the standard 16-byte AEAD tag overhead")
}

func TestNewInitialCryptoSetupIsDeterministicPerConnectionID(t *testing.T) {
	id := protocol.ParseConnectionID([]byte{0xde, 0xad, 0xbe, 0xef})
	a := NewInitialCryptoSetup(id)
	b := NewInitialCryptoSetup(id)

	_, okA := a.GetSealer(protocol.EncryptionInitial)
	_, okB := b.GetSealer(protocol.EncryptionInitial)
	require.True(t, okA)
	require.True(t, okB)
}
