package utils

import "image"

// CellOrigin 返回网格第 row 行第 col 列单元格左上角的像素坐标
// 参数:
//   - row, col: 行列索引（从 0 开始）
//   - cellWidth, cellHeight: 单元格尺寸
func CellOrigin(row, col, cellWidth, cellHeight int) image.Point {
	return image.Point{X: col * cellWidth, Y: row * cellHeight}
}

// CellRect 返回单元格占据的半开矩形 [x, x+w) × [y, y+h)
func CellRect(row, col, cellWidth, cellHeight int) image.Rectangle {
	min := CellOrigin(row, col, cellWidth, cellHeight)
	return image.Rectangle{Min: min, Max: min.Add(image.Point{X: cellWidth, Y: cellHeight})}
}

// CellAt 将像素坐标转换为网格行列
// 参数:
//   - x, y: 像素坐标
//   - cellWidth, cellHeight: 单元格尺寸
//   - columns, rows: 网格列数和行数
//
// 返回:
//   - row, col: 行列索引
//   - isValid: 是否在网格范围内
func CellAt(x, y, cellWidth, cellHeight, columns, rows int) (row, col int, isValid bool) {
	if cellWidth <= 0 || cellHeight <= 0 {
		return 0, 0, false
	}
	if x < 0 || y < 0 || x >= columns*cellWidth || y >= rows*cellHeight {
		return 0, 0, false
	}
	return y / cellHeight, x / cellWidth, true
}
