// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// gih server handlers and the terminal client.
//
// All Msg* constants are the human-readable, user-facing message strings
// written into HTTP response envelopes or shown as client notifications.
// The application is Arabic-localised; keeping the strings in one place
// ensures the server and the client always use identical wording.
package app

// Server-side envelope messages.
const (
	// MsgInvalidCredentials is returned when the admin login/password
	// combination does not match the stored credential.
	MsgInvalidCredentials = "اسم المستخدم أو كلمة المرور غير صحيحة"

	// MsgLoginSucceeded is returned alongside the session token after a
	// successful admin login.
	MsgLoginSucceeded = "تم تسجيل الدخول بنجاح"

	// MsgPageNotFound is returned when a request targets a memory page id
	// that does not exist.
	MsgPageNotFound = "الصفحة غير موجودة"

	// MsgPageDeleted acknowledges a successful page deletion.
	MsgPageDeleted = "تم حذف الصفحة بنجاح"

	// MsgWrongPagePassword is returned when a recipient submits an
	// incorrect view password.
	MsgWrongPagePassword = "كلمة المرور غير صحيحة"

	// MsgPasswordVerified is returned together with the unlocked page
	// content after a successful password check.
	MsgPasswordVerified = "تم التحقق بنجاح"

	// MsgUploadError prefixes the detail text when storing an uploaded
	// file fails server-side.
	MsgUploadError = "خطأ في رفع الملف"

	// MsgPageIDTaken is returned when a create or id-change collides with
	// an existing page identifier.
	MsgPageIDTaken = "معرف الصفحة مستخدم بالفعل"

	// MsgNoMemoriesProvided is returned (and shown locally by the client
	// before any request is sent) when a page submission carries an empty
	// memory list.
	MsgNoMemoriesProvided = "يجب إضافة ذكرى واحدة على الأقل"
)

// Client-side notification messages. The generic errors cover transport
// failures where no server-provided message exists.
const (
	MsgLoginFailedGeneric  = "حدث خطأ في تسجيل الدخول"
	MsgLoadPagesFailed     = "حدث خطأ في تحميل الصفحات"
	MsgLoadPageFailed      = "حدث خطأ في تحميل البيانات"
	MsgDeleteFailed        = "حدث خطأ في حذف الصفحة"
	MsgLinkCopied          = "تم نسخ الرابط بنجاح"
	MsgPageCreated         = "تم إنشاء صفحة الذكريات بنجاح"
	MsgPageUpdated         = "تم تحديث الصفحة بنجاح"
	MsgCreateFailed        = "حدث خطأ في إنشاء الصفحة"
	MsgUpdateFailed        = "حدث خطأ في تحديث الصفحة"
	MsgFileUploaded        = "تم رفع الملف بنجاح"
	MsgFileUploadFailed    = "فشل رفع الملف"
	MsgVerifyFailedGeneric = "حدث خطأ في التحقق من كلمة المرور"
)
