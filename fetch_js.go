package main

import (
	"fmt"
	"syscall/js"
)

// fetchGet downloads a static asset served next to the page. The fetch
// promise callbacks hand the outcome over a channel so the call stays
// synchronous for the wasm main goroutine.
func fetchGet(path string) ([]byte, error) {
	chBody := make(chan []byte, 1)
	chErr := make(chan error, 1)

	var onBody, onResponse, onReject js.Func
	onBody = js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		array := js.Global().Get("Uint8Array").New(args[0])
		b := make([]byte, array.Get("byteLength").Int())
		js.CopyBytesToGo(b, array)
		chBody <- b
		return nil
	})
	onResponse = js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		resp := args[0]
		if !resp.Get("ok").Bool() {
			chErr <- fmt.Errorf("failed to fetch %s: %s", path, resp.Get("statusText").String())
			return nil
		}
		resp.Call("arrayBuffer").Call("then", onBody, onReject)
		return nil
	})
	onReject = js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		chErr <- fmt.Errorf("failed to fetch %s", path)
		return nil
	})
	defer onBody.Release()
	defer onResponse.Release()
	defer onReject.Release()

	js.Global().Call("fetch", path).Call("then", onResponse, onReject)

	select {
	case b := <-chBody:
		return b, nil
	case err := <-chErr:
		return nil, err
	}
}
