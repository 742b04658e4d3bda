package audio

import (
	"bytes"
	"encoding/binary"
	"fmt"
)

const (
	bitsPerSample  = 16
	audioFormatPCM = 1
)

// PCMToWAV wraps 16-bit little endian PCM into a RIFF/WAVE container.
func PCMToWAV(pcm []byte, channels, sampleRate int) ([]byte, error) {
	if len(pcm) == 0 {
		return nil, fmt.Errorf("pcm data is empty")
	}
	if channels <= 0 || channels > 2 {
		return nil, fmt.Errorf("only mono or stereo is supported, got %d channels", channels)
	}
	if sampleRate <= 0 {
		return nil, fmt.Errorf("sample rate must be positive")
	}
	if len(pcm)%(2*channels) != 0 {
		return nil, fmt.Errorf("pcm length %d does not match %d channels", len(pcm), channels)
	}

	blockAlign := channels * bitsPerSample / 8
	buf := bytes.NewBuffer(make([]byte, 0, 44+len(pcm)))
	buf.WriteString("RIFF")
	_ = binary.Write(buf, binary.LittleEndian, uint32(36+len(pcm)))
	buf.WriteString("WAVE")

	buf.WriteString("fmt ")
	_ = binary.Write(buf, binary.LittleEndian, uint32(16))
	_ = binary.Write(buf, binary.LittleEndian, uint16(audioFormatPCM))
	_ = binary.Write(buf, binary.LittleEndian, uint16(channels))
	_ = binary.Write(buf, binary.LittleEndian, uint32(sampleRate))
	_ = binary.Write(buf, binary.LittleEndian, uint32(sampleRate*blockAlign))
	_ = binary.Write(buf, binary.LittleEndian, uint16(blockAlign))
	_ = binary.Write(buf, binary.LittleEndian, uint16(bitsPerSample))

	buf.WriteString("data")
	_ = binary.Write(buf, binary.LittleEndian, uint32(len(pcm)))
	buf.Write(pcm)
	return buf.Bytes(), nil
}

// EncodeWAV renders mono samples. An empty input still yields a valid, silent header.
func EncodeWAV(samples []int16, sampleRate int) []byte {
	pcm := make([]byte, 2*len(samples))
	for i, s := range samples {
		binary.LittleEndian.PutUint16(pcm[2*i:], uint16(s))
	}
	if len(pcm) == 0 {
		pcm = make([]byte, 2)
	}
	wav, _ := PCMToWAV(pcm, 1, sampleRate)
	return wav
}
