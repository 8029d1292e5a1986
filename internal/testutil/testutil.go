package testutil

import "github.com/pkg/errors"

// github.com/pkg/errors の errors.Is に nil も扱えるようにしたもの
// 第一引数に gotErr
// 第二引数に wantErr が期待されている
func ErrorsIs(err error, target error) bool {
	// nil と nil の比較のため
	if err == nil && target == nil {
		return true
	}

	if err == nil || target == nil {
		return false
	}

	return errors.Is(err, target)
}
