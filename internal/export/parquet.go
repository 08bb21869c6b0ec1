package export

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/xitongsys/parquet-go-source/local"
	"github.com/xitongsys/parquet-go/source"
	"github.com/xitongsys/parquet-go/writer"

	"github.com/csakala/tableside/internal/cloudwriter"
	"github.com/csakala/tableside/internal/models"
)

// OrderRecord is the flattened parquet row for a completed order.
type OrderRecord struct {
	ID            string  `parquet:"name=id, type=BYTE_ARRAY, convertedtype=UTF8"`
	TableNumber   int32   `parquet:"name=table_number, type=INT32"`
	CustomerName  string  `parquet:"name=customer_name, type=BYTE_ARRAY, convertedtype=UTF8"`
	Total         float64 `parquet:"name=total, type=DOUBLE"`
	Status        string  `parquet:"name=status, type=BYTE_ARRAY, convertedtype=UTF8"`
	Timestamp     int64   `parquet:"name=timestamp, type=INT64"`
	EstimatedTime int32   `parquet:"name=estimated_time, type=INT32"`
	ItemCount     int32   `parquet:"name=item_count, type=INT32"`
	PaymentMethod string  `parquet:"name=payment_method, type=BYTE_ARRAY, convertedtype=UTF8"`
	DeliveryType  string  `parquet:"name=delivery_type, type=BYTE_ARRAY, convertedtype=UTF8"`
	Currency      string  `parquet:"name=currency, type=BYTE_ARRAY, convertedtype=UTF8"`
}

// Exporter writes order snapshots as parquet, locally or to cloud storage
// depending on configuration.
type Exporter struct {
	config             *models.Config
	cloudWriterFactory cloudwriter.CloudWriterFactory
}

func NewExporter(config *models.Config) (*Exporter, error) {
	e := &Exporter{config: config}

	if config.ExportDestination != "local" {
		var factory cloudwriter.CloudWriterFactory
		var err error

		switch config.CloudStorage.Provider {
		case "s3":
			factory, err = cloudwriter.NewS3WriterFactory(config.CloudStorage.Region)
		default:
			return nil, fmt.Errorf("unsupported cloud storage provider: %s", config.CloudStorage.Provider)
		}
		if err != nil {
			return nil, fmt.Errorf("failed to create cloud writer factory: %w", err)
		}
		e.cloudWriterFactory = factory
	}

	return e, nil
}

// ExportOrders writes one row per order and returns the object path.
func (e *Exporter) ExportOrders(orders []models.Order) (string, error) {
	objectPath := filepath.Join(e.config.ExportPath, fmt.Sprintf("orders_%s.parquet", time.Now().Format("20060102_150405")))

	fw, err := e.openFile(objectPath)
	if err != nil {
		return "", err
	}

	pw, err := writer.NewParquetWriter(fw, new(OrderRecord), 4)
	if err != nil {
		fw.Close()
		return "", fmt.Errorf("failed to create parquet writer: %w", err)
	}

	for i := range orders {
		o := &orders[i]
		record := OrderRecord{
			ID:            o.ID,
			TableNumber:   int32(o.TableNumber),
			CustomerName:  o.CustomerName,
			Total:         o.Total,
			Status:        o.Status,
			Timestamp:     o.Timestamp.Unix(),
			EstimatedTime: int32(o.EstimatedTime),
			ItemCount:     int32(len(o.Items)),
			PaymentMethod: o.PaymentMethod,
			DeliveryType:  o.DeliveryType,
			Currency:      o.Currency,
		}
		if err := pw.Write(record); err != nil {
			fw.Close()
			return "", fmt.Errorf("failed to write order %s: %w", o.ID, err)
		}
	}

	if err := pw.WriteStop(); err != nil {
		fw.Close()
		return "", fmt.Errorf("failed to finalize parquet file: %w", err)
	}
	if err := fw.Close(); err != nil {
		return "", err
	}
	return objectPath, nil
}

func (e *Exporter) openFile(objectPath string) (source.ParquetFile, error) {
	if e.cloudWriterFactory != nil {
		cw, err := e.cloudWriterFactory.NewWriter(e.config.CloudStorage.BucketName, objectPath)
		if err != nil {
			return nil, fmt.Errorf("failed to create cloud file writer: %w", err)
		}
		return newCloudParquetFile(cw), nil
	}

	if err := os.MkdirAll(filepath.Dir(objectPath), os.ModePerm); err != nil {
		return nil, err
	}
	fw, err := local.NewLocalFileWriter(objectPath)
	if err != nil {
		return nil, fmt.Errorf("failed to create local file writer: %w", err)
	}
	return fw, nil
}

// cloudParquetFile adapts a CloudWriter to the parquet source interface.
// Cloud objects are write-only here: reads and end-relative seeks are not
// supported.
type cloudParquetFile struct {
	cloudWriter cloudwriter.CloudWriter
	offset      int64
}

func newCloudParquetFile(cw cloudwriter.CloudWriter) *cloudParquetFile {
	return &cloudParquetFile{cloudWriter: cw}
}

func (c *cloudParquetFile) Open(name string) (source.ParquetFile, error)   { return c, nil }
func (c *cloudParquetFile) Create(name string) (source.ParquetFile, error) { return c, nil }

func (c *cloudParquetFile) Seek(offset int64, whence int) (int64, error) {
	switch whence {
	case io.SeekStart:
		c.offset = offset
	case io.SeekCurrent:
		c.offset += offset
	case io.SeekEnd:
		return 0, fmt.Errorf("seek from end not supported for cloud storage")
	}
	return c.offset, nil
}

func (c *cloudParquetFile) Read(p []byte) (n int, err error) {
	return 0, fmt.Errorf("read not supported for cloud storage")
}

func (c *cloudParquetFile) Write(p []byte) (n int, err error) {
	return c.cloudWriter.Write(p)
}

func (c *cloudParquetFile) Close() error {
	return c.cloudWriter.Close()
}
