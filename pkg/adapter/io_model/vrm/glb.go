// 指示: miu200521358
package vrm

import (
	"bytes"
	"encoding/binary"

	"github.com/miu200521358/mu_vrmspec/pkg/shared/merr"
)

const (
	glbHeaderLength   = 12
	glbChunkHeadSize  = 8
	glbMagic          = 0x46546C67
	glbVersion        = 2
	glbJSONChunkType  = 0x4E4F534A
	glbBINChunkType   = 0x004E4942
	glbMinValidLength = glbHeaderLength + glbChunkHeadSize
)

// isGLB は先頭がGLBマジックかを判定する。
func isGLB(b []byte) bool {
	return len(b) >= 4 && binary.LittleEndian.Uint32(b[0:4]) == glbMagic
}

// parseGLBChunks はGLBバイナリからJSONチャンクとBINチャンクを取り出す。
func parseGLBChunks(b []byte) ([]byte, []byte, error) {
	if len(b) < glbMinValidLength {
		return nil, nil, merr.NewIoParseFailed("GLBヘッダが不足しています", nil)
	}
	if !isGLB(b) {
		return nil, nil, merr.NewIoParseFailed("GLBマジックが不正です", nil)
	}
	if version := binary.LittleEndian.Uint32(b[4:8]); version != glbVersion {
		return nil, nil, merr.NewIoFormatNotSupported("GLBバージョンが未対応です: %d", nil, version)
	}
	totalLength := int(binary.LittleEndian.Uint32(b[8:12]))
	if totalLength <= 0 || totalLength > len(b) {
		return nil, nil, merr.NewIoParseFailed("GLB全体長が不正です", nil)
	}

	var jsonChunk []byte
	var binChunk []byte
	offset := glbHeaderLength
	for offset+glbChunkHeadSize <= totalLength {
		chunkLength := int(binary.LittleEndian.Uint32(b[offset : offset+4]))
		chunkType := binary.LittleEndian.Uint32(b[offset+4 : offset+8])
		chunkStart := offset + glbChunkHeadSize
		chunkEnd := chunkStart + chunkLength
		if chunkLength < 0 || chunkEnd > totalLength {
			return nil, nil, merr.NewIoParseFailed("GLBチャンク長が不正です", nil)
		}
		switch chunkType {
		case glbJSONChunkType:
			if jsonChunk == nil {
				jsonChunk = append([]byte(nil), b[chunkStart:chunkEnd]...)
			}
		case glbBINChunkType:
			if binChunk == nil {
				binChunk = append([]byte(nil), b[chunkStart:chunkEnd]...)
			}
		}
		offset = chunkEnd
	}
	if len(jsonChunk) == 0 {
		return nil, nil, merr.NewIoParseFailed("GLB JSONチャンクが見つかりません", nil)
	}
	return jsonChunk, binChunk, nil
}

// buildGLB はJSONチャンクとBINチャンクからGLBバイナリを組み立てる。
// JSONは空白、BINは0で4バイト境界に揃える。
func buildGLB(jsonChunk []byte, binChunk []byte) []byte {
	jsonBytes := padChunk(jsonChunk, ' ')
	binBytes := padChunk(binChunk, 0x00)
	totalLength := glbHeaderLength + glbChunkHeadSize + len(jsonBytes)
	if len(binBytes) > 0 {
		totalLength += glbChunkHeadSize + len(binBytes)
	}

	buf := bytes.NewBuffer(make([]byte, 0, totalLength))
	writeUint32(buf, glbMagic)
	writeUint32(buf, glbVersion)
	writeUint32(buf, uint32(totalLength))
	writeUint32(buf, uint32(len(jsonBytes)))
	writeUint32(buf, glbJSONChunkType)
	buf.Write(jsonBytes)
	if len(binBytes) > 0 {
		writeUint32(buf, uint32(len(binBytes)))
		writeUint32(buf, glbBINChunkType)
		buf.Write(binBytes)
	}
	return buf.Bytes()
}

func padChunk(chunk []byte, pad byte) []byte {
	padSize := (4 - (len(chunk) % 4)) % 4
	if padSize == 0 {
		return chunk
	}
	return append(append([]byte(nil), chunk...), bytes.Repeat([]byte{pad}, padSize)...)
}

func writeUint32(buf *bytes.Buffer, value uint32) {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], value)
	buf.Write(b[:])
}
