package repository

import "errors"

var ErrCorruptRecord = errors.New("corrupt stored record")
