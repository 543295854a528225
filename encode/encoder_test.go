package encode

import (
	"testing"

	"github.com/mintpond/bos/value"
	"github.com/stretchr/testify/require"
)

func serialize(t *testing.T, v value.Value) []byte {
	t.Helper()
	e := NewEncoder()
	buf, err := e.Serialize(v)
	require.NoError(t, err)
	defer buf.Release()

	out := make([]byte, len(buf.Bytes()))
	copy(out, buf.Bytes())
	return out
}

func TestSerialize_Null(t *testing.T) {
	require.Equal(t, []byte{0x05, 0x00, 0x00, 0x00, 0x00}, serialize(t, value.Null()))
}

func TestSerialize_BoolTrue(t *testing.T) {
	require.Equal(t, []byte{0x06, 0x00, 0x00, 0x00, 0x01, 0x01}, serialize(t, value.Bool(true)))
}

func TestSerialize_IntegerNegativeInt8(t *testing.T) {
	out := serialize(t, value.Int(-1))
	require.Len(t, out, 6)
	require.Equal(t, byte(0x02), out[4])
	require.Equal(t, byte(0xFF), out[5])
}

func TestSerialize_IntegerNegativeInt16(t *testing.T) {
	out := serialize(t, value.Int(-300))
	require.Len(t, out, 7)
	require.Equal(t, byte(0x03), out[4])
	require.Equal(t, []byte{0xD4, 0xFE}, out[5:7])
}

func TestSerialize_IntegerNegativeInt32(t *testing.T) {
	out := serialize(t, value.Int(-2147483640))
	require.Len(t, out, 9)
	require.Equal(t, byte(0x04), out[4])
}

func TestSerialize_IntegerNegativeInt64(t *testing.T) {
	out := serialize(t, value.Int(-1099511627775))
	require.Len(t, out, 13)
	require.Equal(t, byte(0x05), out[4])
}

func TestSerialize_IntegerUInt8(t *testing.T) {
	out := serialize(t, value.Int(255))
	require.Len(t, out, 6)
	require.Equal(t, byte(0x06), out[4])
	require.Equal(t, byte(0xFF), out[5])
}

func TestSerialize_IntegerUInt16(t *testing.T) {
	out := serialize(t, value.Int(4000))
	require.Len(t, out, 7)
	require.Equal(t, byte(0x07), out[4])
	require.Equal(t, []byte{0xA0, 0x0F}, out[5:7])
}

func TestSerialize_IntegerUInt32(t *testing.T) {
	out := serialize(t, value.Int(4294967290))
	require.Len(t, out, 9)
	require.Equal(t, byte(0x08), out[4])
}

func TestSerialize_IntegerUInt64(t *testing.T) {
	out := serialize(t, value.Int(1099511627775))
	require.Len(t, out, 13)
	require.Equal(t, byte(0x09), out[4])
}

func TestSerialize_RealNarrowsToFloat32(t *testing.T) {
	out := serialize(t, value.Real(5.5))
	require.Len(t, out, 9)
	require.Equal(t, byte(0x0A), out[4])
}

func TestSerialize_String(t *testing.T) {
	out := serialize(t, value.Str("string"))
	require.Len(t, out, 12)
	require.Equal(t, byte(0x0C), out[4])
	require.Equal(t, byte(0x06), out[5])
	require.Equal(t, []byte("string"), out[6:12])
}

func TestSerialize_Bytes(t *testing.T) {
	payload := make([]byte, 300)
	for i := range payload {
		payload[i] = byte(i)
	}
	out := serialize(t, value.Bytes(payload))
	require.Len(t, out, 308)
	require.Equal(t, byte(0x0D), out[4])
	require.Equal(t, []byte{0xFD, 0x2C, 0x01}, out[5:8])
	require.Equal(t, payload, out[8:308])
}

func TestSerialize_Array(t *testing.T) {
	arr := value.NewArray()
	arr.ArrayValue().Append(value.Int(1))

	out := serialize(t, arr)
	require.Len(t, out, 8)
	require.Equal(t, byte(0x0E), out[4])
	require.Equal(t, byte(0x01), out[5])
	require.Equal(t, []byte{0x06, 0x01}, out[6:8])
}

func TestSerialize_Object(t *testing.T) {
	obj := value.NewObject()
	err := obj.ObjectValue().Set("key0", value.Int(1))
	require.NoError(t, err)

	out := serialize(t, obj)
	require.Len(t, out, 13)
	require.Equal(t, byte(0x0F), out[4])
	require.Equal(t, byte(0x01), out[5])
	require.Equal(t, byte(0x04), out[6])
	require.Equal(t, []byte("key0"), out[7:11])
	require.Equal(t, []byte{0x06, 0x01}, out[11:13])
}

func TestSerialize_HeaderContract(t *testing.T) {
	out := serialize(t, value.Str("hello"))
	require.Equal(t, uint32(len(out)), leUint32(out[:4]))
}

func TestSerialize_ArrayTooLarge(t *testing.T) {
	arr := value.NewArray()
	for i := 0; i < 256; i++ {
		arr.ArrayValue().Append(value.Int(int64(i)))
	}

	e := NewEncoder()
	_, err := e.Serialize(arr)
	require.Error(t, err)
}

func TestSerialize_ObjectTooLarge(t *testing.T) {
	obj := value.NewObject()
	for i := 0; i < 256; i++ {
		require.NoError(t, obj.ObjectValue().Set(keyName(i), value.Int(int64(i))))
	}

	e := NewEncoder()
	_, err := e.Serialize(obj)
	require.Error(t, err)
}

func TestWithInitialCapacity(t *testing.T) {
	e := NewEncoder(WithInitialCapacity(1024))
	buf, err := e.Serialize(value.Bool(false))
	require.NoError(t, err)
	defer buf.Release()
	require.Equal(t, []byte{0x06, 0x00, 0x00, 0x00, 0x01, 0x00}, buf.Bytes())
}

func leUint32(b []byte) uint32 {
	return uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16 | uint32(b[3])<<24
}

func keyName(i int) string {
	const letters = "abcdefghijklmnopqrstuvwxyz"
	return string([]byte{letters[i/26%26], letters[i%26]})
}
