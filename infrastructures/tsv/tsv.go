// tsv は外部のツールが書くタブ区切りのファイル（チャンネル一覧・局のプレイリスト）を読む
package tsv

import (
	"bufio"
	"io"
	"os"
	"strings"
)

// readRecords は空行と # で始まる行を飛ばして、タブで区切ったレコードを返す
func readRecords(r io.Reader) ([][]string, error) {
	var records [][]string
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Split(line, "\t")
		for i := range fields {
			fields[i] = strings.TrimSpace(fields[i])
		}
		records = append(records, fields)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return records, nil
}

// readFile はファイルがなければ nil, false を返す
func readFile(path string) ([][]string, bool, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, false, nil
		}
		return nil, false, err
	}
	defer f.Close()

	records, err := readRecords(f)
	if err != nil {
		return nil, false, err
	}
	return records, true, nil
}
