// Пакет media отвечает за прием, проверку и хранение вложений пользователя
// на время диалога. Файлы живут только до завершения диалога и удаляются
// на любом исходе: отправка, отмена, ошибка.
package media

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
)

// Store описывает хранилище вложений (см. DiskStore).
type Store interface {
	Save(filename string, r io.Reader) (size int64, err error)
	Delete(filename string) error
	Path(filename string) string
}

// DiskStore хранит вложения в локальной директории.
type DiskStore struct {
	dir string
}

// NewDiskStore создает директорию хранилища, если ее нет.
func NewDiskStore(dir string) (*DiskStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("не удалось создать директорию медиа '%s': %w", dir, err)
	}
	return &DiskStore{dir: dir}, nil
}

// Save записывает содержимое r в файл и возвращает записанный размер.
// При ошибке записи частичный файл удаляется.
func (ds *DiskStore) Save(filename string, r io.Reader) (int64, error) {
	path := ds.Path(filename)
	f, err := os.Create(path)
	if err != nil {
		return 0, fmt.Errorf("создание файла '%s': %w", filename, err)
	}
	size, err := io.Copy(f, r)
	closeErr := f.Close()
	if err == nil {
		err = closeErr
	}
	if err != nil {
		os.Remove(path)
		return 0, fmt.Errorf("запись файла '%s': %w", filename, err)
	}
	return size, nil
}

// Delete удаляет файл. Отсутствие файла ошибкой не считается.
func (ds *DiskStore) Delete(filename string) error {
	err := os.Remove(ds.Path(filename))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("удаление файла '%s': %w", filename, err)
	}
	return nil
}

// Path возвращает полный путь к файлу в хранилище.
func (ds *DiskStore) Path(filename string) string {
	return filepath.Join(ds.dir, filepath.Base(filename))
}

// Sweep удаляет все файлы из директории хранилища. Используется ежедневной
// плановой чисткой на случай файлов, осиротевших после падения процесса.
func (ds *DiskStore) Sweep() {
	log.Printf("DiskStore.Sweep: Очистка директории %s", ds.dir)
	entries, err := os.ReadDir(ds.dir)
	if err != nil {
		log.Printf("DiskStore.Sweep: Ошибка чтения директории %s: %v", ds.dir, err)
		return
	}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if err := os.Remove(filepath.Join(ds.dir, entry.Name())); err != nil {
			log.Printf("DiskStore.Sweep: Ошибка удаления файла %s: %v", entry.Name(), err)
		} else {
			log.Printf("DiskStore.Sweep: Удален файл %s", entry.Name())
		}
	}
}
