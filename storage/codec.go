package storage

import (
	"bytes"
	"encoding/binary"
	"encoding/hex"
	"fmt"

	"github.com/MixinNetwork/rational/config"
	"github.com/klauspost/compress/zstd"
	"github.com/vmihailenco/msgpack/v4"
)

var (
	zstdEncoder *zstd.Encoder
	zstdDecoder *zstd.Decoder

	compressionVersionLatest = compressionVersion(config.DatasetVersion)
)

func init() {
	enc, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		panic(err)
	}
	dec, err := zstd.NewReader(nil)
	if err != nil {
		panic(err)
	}
	zstdEncoder, zstdDecoder = enc, dec
}

func compressionVersion(v uint32) []byte {
	b := make([]byte, 4)
	binary.BigEndian.PutUint32(b, v)
	return b
}

func compressMsgpackMarshalPanic(val interface{}) []byte {
	payload := msgpackMarshalPanic(val)
	payload = zstdEncoder.EncodeAll(payload, nil)
	return append(compressionVersion(config.DatasetVersion), payload...)
}

func decompressMsgpackUnmarshal(data []byte, val interface{}) error {
	header := len(compressionVersionLatest)
	if len(data) < header*2 {
		return fmt.Errorf("compressed payload too short %d", len(data))
	}
	if !bytes.Equal(data[:header], compressionVersionLatest) {
		return fmt.Errorf("compressed payload version %x", data[:header])
	}
	payload, err := zstdDecoder.DecodeAll(data[header:], nil)
	if err != nil {
		return err
	}
	return msgpackUnmarshal(payload, val)
}

func msgpackMarshalPanic(val interface{}) []byte {
	var buf bytes.Buffer
	enc := msgpack.NewEncoder(&buf).UseCompactEncoding(true).SortMapKeys(true)
	err := enc.Encode(val)
	if err != nil {
		panic(fmt.Errorf("msgpackMarshalPanic: %#v %s", val, err.Error()))
	}
	return buf.Bytes()
}

func msgpackUnmarshal(data []byte, val interface{}) error {
	err := msgpack.Unmarshal(data, val)
	if err == nil {
		return nil
	}
	return fmt.Errorf("msgpackUnmarshal: %s %w", hex.EncodeToString(data), err)
}
