// Package recording provides a device that records scene execution.
//
// A Recorder implements device.Device and stores every call as a typed
// command struct instead of encoding it for a graphics API. The resulting
// Recording can be inspected command by command, summarized per command type,
// or replayed to any other device.
//
// Commands are plain value structs, one per device method, following Cairo's
// approach of typed commands for inspectability rather than a binary stream.
//
// # Example
//
//	rec := recording.NewRecorder(0)
//	exec.ExecuteScene(state, sc, executor.Iterator{})
//	r := rec.FinishRecording()
//
//	for _, cmd := range r.Commands() {
//	    fmt.Println(recording.Format(cmd))
//	}
//
//	// Replay to another device
//	r.Playback(device.NewLoggingDevice(dev, nil))
//
// The package registers itself with the device registry under the name
// "recording".
package recording
