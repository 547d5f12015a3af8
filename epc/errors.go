/* Apache v2 license
 * Copyright (C) 2020 Intel Corporation
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package epc

import "fmt"

// The error types in this file classify the ways encoding and decoding can
// fail. Operations return them directly or wrapped with additional context,
// so use errors.As to check for a particular kind.

// FieldValueError indicates a value that violates a field's bit width, digit
// count, or character set.
type FieldValueError string

func (e FieldValueError) Error() string { return string(e) }

func fieldValueErrorf(format string, args ...interface{}) FieldValueError {
	return FieldValueError(fmt.Sprintf(format, args...))
}

// InvalidSerialNumberError indicates a serial number that violates the
// scheme's serial rules, including its fixed-length settings.
type InvalidSerialNumberError string

func (e InvalidSerialNumberError) Error() string { return string(e) }

func serialNumberErrorf(format string, args ...interface{}) InvalidSerialNumberError {
	return InvalidSerialNumberError(fmt.Sprintf(format, args...))
}

// UnknownFieldError indicates a field name the scheme's dictionary doesn't
// define.
type UnknownFieldError string

func (e UnknownFieldError) Error() string { return string(e) }

func unknownFieldError(name string) UnknownFieldError {
	return UnknownFieldError(fmt.Sprintf("no field named %q", name))
}

// DuplicateFieldError indicates an attempt to register a field name a
// dictionary already defines.
type DuplicateFieldError string

func (e DuplicateFieldError) Error() string { return string(e) }

func duplicateFieldError(name string) DuplicateFieldError {
	return DuplicateFieldError(fmt.Sprintf("a field named %q is already defined", name))
}

// InvalidPartitionError indicates a partition value or company prefix length
// outside the scheme's partition table.
type InvalidPartitionError string

func (e InvalidPartitionError) Error() string { return string(e) }

func partitionErrorf(format string, args ...interface{}) InvalidPartitionError {
	return InvalidPartitionError(fmt.Sprintf(format, args...))
}

// UninitializedSchemeError indicates an operation that needs the scheme's
// fields before LoadFields, Encode, or a decode has populated them.
type UninitializedSchemeError string

func (e UninitializedSchemeError) Error() string { return string(e) }

func uninitializedError(encodingType string) UninitializedSchemeError {
	return UninitializedSchemeError(fmt.Sprintf(
		"%s has no fields loaded; encode or decode into it first", encodingType))
}

// UnsupportedFormatError indicates a rendering format the scheme doesn't
// recognize.
type UnsupportedFormatError string

func (e UnsupportedFormatError) Error() string { return string(e) }

func unsupportedFormatError(kind string) UnsupportedFormatError {
	return UnsupportedFormatError(fmt.Sprintf("unsupported format %q", kind))
}
