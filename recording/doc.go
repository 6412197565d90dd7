// SPDX-License-Identifier: EPL-2.0

// Package recording decodes the audio a feature file was computed from, so a
// detected match can be checked by ear.
//
// Decoders are looked up by file extension in a [Registry]. [DefaultRegistry]
// knows WAV and AIFF (16-bit PCM, via go-audio), MP3 (go-mp3) and Ogg Vorbis
// (oggvorbis). Every [Source] yields interleaved float32 samples in [-1, 1].
//
// [Clip] cuts a time window out of a source, mixed down to mono, and
// [WriteWAV16] stores it. [ExtractFile] does both:
//
//	reg := recording.DefaultRegistry()
//	// frames 120..170 of a 10 ms feature stream
//	err := recording.ExtractFile(reg, "utt.wav", "match.wav",
//		1200*time.Millisecond, 500*time.Millisecond)
package recording
