package httpd

import (
	"errors"
	"net/http"

	"github.com/pquerna/ffjson/ffjson"
)

var errMarshalOutput = errors.New("Marshal JSON output fail.")

type Response struct {
	Code int         `json:"httpstatus"`
	Msg  string      `json:"msg,omitempty"`
	Data interface{} `json:"data,omitempty"`
}

func WriteResponse(w http.ResponseWriter, code int, resp Response) {
	if resp.Code == 0 {
		resp.Code = code
	}
	body, err := ffjson.Marshal(resp)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(errMarshalOutput.Error()))
		return
	}
	w.WriteHeader(code)
	w.Write(body)
}

// Return 200 http status.
func ReturnOK(w http.ResponseWriter, msg string) {
	WriteResponse(w, http.StatusOK, Response{Msg: msg})
}

// Return 400 http status.
func ReturnBadRequest(w http.ResponseWriter, err error) {
	WriteResponse(w, http.StatusBadRequest, Response{Msg: err.Error()})
}

// Return 404 http status.
func ReturnNotFound(w http.ResponseWriter, msg string) {
	WriteResponse(w, http.StatusNotFound, Response{Msg: msg})
}

// Return 500 http status.
func ReturnServerError(w http.ResponseWriter, err error) {
	WriteResponse(w, http.StatusInternalServerError, Response{Msg: err.Error()})
}

func ReturnJson(w http.ResponseWriter, httpStatus int, data interface{}) {
	if httpStatus == 0 {
		httpStatus = http.StatusOK
	}
	WriteResponse(w, httpStatus, Response{Data: data})
}
