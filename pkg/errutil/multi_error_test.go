package errutil

import (
	"errors"
	"testing"

	"src.hostline.sh/pkg/tt"
)

var (
	err1 = errors.New("error 1")
	err2 = errors.New("error 2")
	err3 = errors.New("error 3")
)

func TestMulti(t *testing.T) {
	tt.Test(t, Multi,
		tt.Args().Rets(nil),
		tt.Args(nil, nil).Rets(nil),
		tt.Args(err1).Rets(err1),
		tt.Args(nil, err1, nil).Rets(err1),
	)
}

func TestMulti_Flattens(t *testing.T) {
	err := Multi(Multi(err1, err2), err3)
	want := "multiple errors: error 1; error 2; error 3"
	if err.Error() != want {
		t.Errorf("got %q, want %q", err.Error(), want)
	}
}
