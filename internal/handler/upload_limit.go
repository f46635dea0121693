package handler

import "strconv"

func formatUploadLimit(bytes int64) string {
	const (
		kb = 1024
		mb = 1024 * kb
	)
	if bytes <= 0 {
		return "unlimited"
	}
	if bytes < mb {
		value := bytes / kb
		if value <= 0 {
			value = 1
		}
		return strconv.FormatInt(value, 10) + "KB"
	}
	return strconv.FormatInt(bytes/mb, 10) + "MB"
}
