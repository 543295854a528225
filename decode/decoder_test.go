package decode

import (
	"errors"
	"testing"

	"github.com/mintpond/bos/encode"
	"github.com/mintpond/bos/errs"
	"github.com/mintpond/bos/value"
	"github.com/stretchr/testify/require"
)

func roundTrip(t *testing.T, v value.Value) value.Value {
	t.Helper()
	e := encode.NewEncoder()
	buf, err := e.Serialize(v)
	require.NoError(t, err)
	defer buf.Release()

	out := make([]byte, len(buf.Bytes()))
	copy(out, buf.Bytes())

	d := NewDecoder()
	got, err := d.Deserialize(out)
	require.NoError(t, err)
	return got
}

func TestDeserialize_Scalars(t *testing.T) {
	require.True(t, value.Equal(value.Null(), roundTrip(t, value.Null())))
	require.True(t, value.Equal(value.Bool(true), roundTrip(t, value.Bool(true))))
	require.True(t, value.Equal(value.Bool(false), roundTrip(t, value.Bool(false))))
	require.True(t, value.Equal(value.Int(-1), roundTrip(t, value.Int(-1))))
	require.True(t, value.Equal(value.Int(-300), roundTrip(t, value.Int(-300))))
	require.True(t, value.Equal(value.Int(255), roundTrip(t, value.Int(255))))
	require.True(t, value.Equal(value.Int(4294967290), roundTrip(t, value.Int(4294967290))))
	require.True(t, value.Equal(value.Real(5.5), roundTrip(t, value.Real(5.5))))
	require.True(t, value.Equal(value.Str("string"), roundTrip(t, value.Str("string"))))
}

func TestDeserialize_Bytes(t *testing.T) {
	payload := make([]byte, 300)
	for i := range payload {
		payload[i] = byte(i)
	}
	got := roundTrip(t, value.Bytes(payload))
	require.Equal(t, payload, got.BytesValue())
}

func TestDeserialize_Array(t *testing.T) {
	v := value.NewArray()
	v.ArrayValue().Append(value.Int(1))
	v.ArrayValue().Append(value.Str("two"))

	got := roundTrip(t, v)
	require.Equal(t, 2, got.ArrayValue().Len())
	require.Equal(t, int64(1), got.ArrayValue().At(0).IntValue())
	require.Equal(t, "two", got.ArrayValue().At(1).StringValue())
}

func TestDeserialize_Object(t *testing.T) {
	v := value.NewObject()
	require.NoError(t, v.ObjectValue().Set("key0", value.Int(1)))

	got := roundTrip(t, v)
	require.Equal(t, 1, got.ObjectValue().Len())
	gv, ok := got.ObjectValue().Get("key0")
	require.True(t, ok)
	require.Equal(t, int64(1), gv.IntValue())
}

func TestDeserialize_TwelveKeyObject(t *testing.T) {
	v := value.NewObject()
	obj := v.ObjectValue()
	require.NoError(t, obj.Set("bool", value.Bool(true)))
	require.NoError(t, obj.Set("int8", value.Int(-1)))
	require.NoError(t, obj.Set("int16", value.Int(-300)))
	require.NoError(t, obj.Set("int32", value.Int(-2147483640)))
	require.NoError(t, obj.Set("uint8", value.Int(255)))
	require.NoError(t, obj.Set("uint16", value.Int(4000)))
	require.NoError(t, obj.Set("uint32", value.Int(4294967290)))
	require.NoError(t, obj.Set("float", value.Real(5.5)))
	require.NoError(t, obj.Set("string", value.Str("string")))
	require.NoError(t, obj.Set("bytes", value.Bytes([]byte("xyz"))))

	arr := value.NewArray()
	arr.ArrayValue().Append(value.Int(1))
	require.NoError(t, obj.Set("array", arr))

	nested := value.NewObject()
	require.NoError(t, nested.ObjectValue().Set("inner", value.Int(7)))
	require.NoError(t, obj.Set("obj", nested))

	require.Equal(t, 12, obj.Len())

	got := roundTrip(t, v)
	gotObj := got.ObjectValue()
	require.Equal(t, 12, gotObj.Len())

	gv, ok := gotObj.Get("bool")
	require.True(t, ok)
	require.True(t, gv.BoolValue())

	gv, ok = gotObj.Get("array")
	require.True(t, ok)
	require.Equal(t, 1, gv.ArrayValue().Len())

	gv, ok = gotObj.Get("obj")
	require.True(t, ok)
	inner, ok := gv.ObjectValue().Get("inner")
	require.True(t, ok)
	require.Equal(t, int64(7), inner.IntValue())

	require.True(t, value.Equal(v, got))
}

func TestDeserialize_HeaderTruncated(t *testing.T) {
	d := NewDecoder()
	_, err := d.Deserialize([]byte{0x06, 0x00, 0x00, 0x00, 0x01})
	require.Error(t, err)
	require.True(t, errors.Is(err, errs.ErrTruncatedInput))
}

func TestDeserialize_TruncatedPayloadEveryPrefix(t *testing.T) {
	e := encode.NewEncoder()
	buf, err := e.Serialize(value.Str("hello world"))
	require.NoError(t, err)
	defer buf.Release()

	full := buf.Bytes()
	d := NewDecoder()
	for n := 0; n < len(full); n++ {
		_, err := d.Deserialize(full[:n])
		require.Error(t, err, "truncation at %d bytes should fail", n)
	}
}

func TestDeserialize_UnknownTypeCode(t *testing.T) {
	data := []byte{0x06, 0x00, 0x00, 0x00, 0x10, 0x00}
	d := NewDecoder()
	_, err := d.Deserialize(data)
	require.Error(t, err)
	require.True(t, errors.Is(err, errs.ErrUnknownTypeCode))
}

func TestDeserialize_TrailingBytes(t *testing.T) {
	data := []byte{0x06, 0x00, 0x00, 0x00, 0x00, 0xFF}
	d := NewDecoder()
	_, err := d.Deserialize(data)
	require.Error(t, err)
	require.True(t, errors.Is(err, errs.ErrTrailingBytes))
}

func TestDeserialize_InvalidBoolean(t *testing.T) {
	data := []byte{0x06, 0x00, 0x00, 0x00, 0x01, 0x02}
	d := NewDecoder()
	_, err := d.Deserialize(data)
	require.Error(t, err)
	require.True(t, errors.Is(err, errs.ErrInvalidBoolean))
}

func TestDeserialize_LenientBool(t *testing.T) {
	data := []byte{0x06, 0x00, 0x00, 0x00, 0x01, 0x02}
	d := NewDecoder(WithLenientBool())
	got, err := d.Deserialize(data)
	require.NoError(t, err)
	require.True(t, got.BoolValue())
}

func TestDeserialize_DuplicateKey(t *testing.T) {
	data := []byte{
		0x0F, 0x00, 0x00, 0x00,
		0x0F,
		0x02,
		0x01, 'a', 0x06, 0x01,
		0x01, 'a', 0x06, 0x02,
	}
	size := uint32(len(data))
	data[0] = byte(size)
	data[1] = byte(size >> 8)
	data[2] = byte(size >> 16)
	data[3] = byte(size >> 24)

	d := NewDecoder()
	_, err := d.Deserialize(data)
	require.Error(t, err)
	require.True(t, errors.Is(err, errs.ErrDuplicateKey))
}

func TestDeserialize_DepthExceeded(t *testing.T) {
	v := value.Int(1)
	for i := 0; i < 200; i++ {
		arr := value.NewArray()
		arr.ArrayValue().Append(v)
		v = arr
	}

	e := encode.NewEncoder()
	buf, err := e.Serialize(v)
	require.NoError(t, err)
	defer buf.Release()

	out := make([]byte, len(buf.Bytes()))
	copy(out, buf.Bytes())

	d := NewDecoder()
	_, err = d.Deserialize(out)
	require.Error(t, err)
	require.True(t, errors.Is(err, errs.ErrDepthExceeded))
}

func TestDeserialize_WithMaxDepth(t *testing.T) {
	arr := value.NewArray()
	inner := value.NewArray()
	inner.ArrayValue().Append(value.Int(1))
	arr.ArrayValue().Append(inner)

	e := encode.NewEncoder()
	buf, err := e.Serialize(arr)
	require.NoError(t, err)
	defer buf.Release()

	out := make([]byte, len(buf.Bytes()))
	copy(out, buf.Bytes())

	d := NewDecoder(WithMaxDepth(1))
	_, err = d.Deserialize(out)
	require.Error(t, err)
	require.True(t, errors.Is(err, errs.ErrDepthExceeded))
}
