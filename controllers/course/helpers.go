package courseController

import (
	"io"
	"mime/multipart"
)

// readMultipartFile drains an uploaded file into memory for the media host
func readMultipartFile(fileHeader *multipart.FileHeader) ([]byte, error) {
	file, err := fileHeader.Open()
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return io.ReadAll(file)
}
