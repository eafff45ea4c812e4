package dataset_test

import (
	"bytes"
	"errors"
	"os"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sheetworks/cut-estimator/internal/dataset"
)

var _ = Describe("Loader", func() {
	var (
		loader *dataset.Loader
		tmpDir string
	)

	BeforeEach(func() {
		loader = dataset.NewLoader()
		tmpDir = GinkgoT().TempDir()
	})

	expectReferenceRows := func(ds *dataset.Dataset) {
		Expect(ds.Len()).To(Equal(5))
		first := ds.Rows()[0]
		Expect(first.Material).To(Equal("Steel"))
		Expect(*first.Thickness).To(Equal(3.0))
		Expect(*first.CuttingRate).To(Equal(500.0))
		Expect(*first.PierceTimePrimary).To(Equal(0.01))
		Expect(*first.PierceTimeSecondary).To(Equal(0.02))
		Expect(*first.MaterialUnitCost).To(Equal(2.5))
		Expect(*first.PackDuration).To(Equal(10.0))
		Expect(*ds.Rows()[2].Thickness).To(Equal(2.0))
		Expect(*ds.Rows()[4].CuttingRate).To(Equal(0.0))
	}

	Describe("FormatFromPath", func() {
		DescribeTable("infers the format from the suffix",
			func(path string, expected dataset.Format) {
				format, err := dataset.FormatFromPath(path)
				Expect(err).NotTo(HaveOccurred())
				Expect(format).To(Equal(expected))
			},
			Entry("xlsx", "date.xlsx", dataset.FormatXLSX),
			Entry("upper case xlsx", "/tmp/DATE.XLSX", dataset.FormatXLSX),
			Entry("ods", "date.ods", dataset.FormatODS),
			Entry("csv", "rates.csv", dataset.FormatCSV),
		)

		It("rejects unknown suffixes with UnsupportedFormat", func() {
			_, err := dataset.FormatFromPath("date.xls")
			var loadErr *dataset.ErrLoad
			Expect(errors.As(err, &loadErr)).To(BeTrue())
			Expect(loadErr.Kind).To(Equal(dataset.UnsupportedFormat))
		})
	})

	Context("xlsx sources", func() {
		It("loads the date sheet", func() {
			path := writeTempFile(tmpDir, "date.xlsx", createReferenceExcel("date", referenceHeader, referenceRows))

			ds, err := loader.Load(path)

			Expect(err).NotTo(HaveOccurred())
			Expect(ds.Source()).To(Equal(path))
			expectReferenceRows(ds)
		})

		It("honours a custom sheet name", func() {
			content := createReferenceExcel("rates", referenceHeader, referenceRows)

			ds, err := dataset.NewLoader(dataset.WithSheet("rates")).LoadReader(bytes.NewReader(content), dataset.FormatXLSX)

			Expect(err).NotTo(HaveOccurred())
			expectReferenceRows(ds)
		})

		It("fails with IOFailure when the sheet is missing", func() {
			path := writeTempFile(tmpDir, "date.xlsx", createReferenceExcel("rates", referenceHeader, referenceRows))

			_, err := loader.Load(path)

			var loadErr *dataset.ErrLoad
			Expect(errors.As(err, &loadErr)).To(BeTrue())
			Expect(loadErr.Kind).To(Equal(dataset.IOFailure))
			Expect(err.Error()).To(ContainSubstring(`sheet "date" not found`))
		})

		It("fails with IOFailure on a corrupted file", func() {
			path := writeTempFile(tmpDir, "date.xlsx", []byte("not a spreadsheet"))

			_, err := loader.Load(path)

			var loadErr *dataset.ErrLoad
			Expect(errors.As(err, &loadErr)).To(BeTrue())
			Expect(loadErr.Kind).To(Equal(dataset.IOFailure))
		})
	})

	Context("ods sources", func() {
		It("loads the date sheet and skips repeated blank rows and cells", func() {
			path := writeTempFile(tmpDir, "date.ods", createReferenceODS("date", referenceHeader, referenceRows))

			ds, err := loader.Load(path)

			Expect(err).NotTo(HaveOccurred())
			expectReferenceRows(ds)
		})

		It("treats empty cells as absent values", func() {
			rows := [][]any{{"Steel", 3, 500, 0.01, 0.02, 2.5, nil}}
			content := createReferenceODS("date", referenceHeader, rows)

			ds, err := loader.LoadReader(bytes.NewReader(content), dataset.FormatODS)

			Expect(err).NotTo(HaveOccurred())
			Expect(ds.Rows()[0].PackDuration).To(BeNil())
			Expect(ds.Rows()[0].CuttingRate).NotTo(BeNil())
		})

		It("fails with IOFailure when the sheet is missing", func() {
			content := createReferenceODS("rates", referenceHeader, referenceRows)

			_, err := loader.LoadReader(bytes.NewReader(content), dataset.FormatODS)

			var loadErr *dataset.ErrLoad
			Expect(errors.As(err, &loadErr)).To(BeTrue())
			Expect(loadErr.Kind).To(Equal(dataset.IOFailure))
		})
	})

	Context("csv sources", func() {
		It("loads all rows", func() {
			path := writeTempFile(tmpDir, "date.csv", createReferenceCSV(referenceHeader, referenceRows))

			ds, err := loader.Load(path)

			Expect(err).NotTo(HaveOccurred())
			expectReferenceRows(ds)
		})

		It("accepts english headers, comma decimals and drops rows without material", func() {
			content := "Material,Thickness,Cutting Rate,Pierce Time 1,Pierce Time 2,Cost,Duration,Notes\n" +
				"Steel,\"2,5\",400,0.01,0.02,3,9,first\n" +
				",4,100,0.01,0.02,3,9,orphan\n" +
				"Steel,4,abc,0.01,0.02,3,9,bad rate\n"

			ds, err := loader.LoadReader(bytes.NewReader([]byte(content)), dataset.FormatCSV)

			Expect(err).NotTo(HaveOccurred())
			Expect(ds.Len()).To(Equal(2))
			Expect(*ds.Rows()[0].Thickness).To(Equal(2.5))
			Expect(*ds.Rows()[0].CuttingRate).To(Equal(400.0))
			Expect(ds.Rows()[1].CuttingRate).To(BeNil())
		})

		It("leaves fields nil when a column is absent", func() {
			content := "Material,Espesor\nSteel,3\n"

			ds, err := loader.LoadReader(bytes.NewReader([]byte(content)), dataset.FormatCSV)

			Expect(err).NotTo(HaveOccurred())
			row := ds.Rows()[0]
			Expect(row.CuttingRate).To(BeNil())
			Expect(row.PierceTimePrimary).To(BeNil())
			Expect(row.PackDuration).To(BeNil())
		})
	})

	It("fails with IOFailure when the file does not exist", func() {
		_, err := loader.Load(tmpDir + "/missing.ods")

		var loadErr *dataset.ErrLoad
		Expect(errors.As(err, &loadErr)).To(BeTrue())
		Expect(loadErr.Kind).To(Equal(dataset.IOFailure))
		Expect(errors.Is(err, os.ErrNotExist)).To(BeTrue())
	})

	It("fails with UnsupportedFormat before touching the file", func() {
		_, err := loader.Load(tmpDir + "/missing.txt")

		var loadErr *dataset.ErrLoad
		Expect(errors.As(err, &loadErr)).To(BeTrue())
		Expect(loadErr.Kind).To(Equal(dataset.UnsupportedFormat))
	})
})
