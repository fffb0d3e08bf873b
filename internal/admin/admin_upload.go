package admin

import "mime/multipart"

type upload struct {
	file     multipart.File
	filename string
}

func (u *upload) image() *Image {
	if u == nil {
		return nil
	}
	return &Image{File: u.file, Filename: u.filename}
}

func (u *upload) close() {
	_ = u.file.Close()
}
