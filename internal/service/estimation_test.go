package service_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/sheetworks/cut-estimator/internal/dataset"
	"github.com/sheetworks/cut-estimator/internal/estimation"
	"github.com/sheetworks/cut-estimator/internal/estimation/calculators"
	"github.com/sheetworks/cut-estimator/internal/selection"
	"github.com/sheetworks/cut-estimator/internal/service"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

const referenceCSV = `Material,Espesor,CW ,1,2,Costo,Duracion
Steel,3,500,0.01,0.02,2.5,10
Steel,5,300,0.02,0.03,4,8
Steel,3,450,0.01,0.02,2.5,10
Inox,1.5,0,0.01,0.01,9,6
Brass,2,400,0.01,0.01,5,
`

func steelRequest() service.JobRequest {
	return service.JobRequest{
		Material:         "Steel",
		Thickness:        "3",
		Perimeter:        "1000",
		HoleCount:        "4",
		PieceWidth:       "200",
		PieceLength:      "300",
		PackNetContent:   "5",
		PackCost:         "20",
		MachineHourCost:  "15",
		OperatorHourCost: "10",
	}
}

var _ = Describe("EstimationService", func() {
	var (
		ds            *dataset.Dataset
		estimationSrv *service.EstimationService
		ctx           context.Context
	)

	BeforeEach(func() {
		var err error
		ds, err = dataset.NewLoader().LoadReader(strings.NewReader(referenceCSV), dataset.FormatCSV)
		Expect(err).ToNot(HaveOccurred())
		estimationSrv = service.NewEstimationService()
		ctx = context.Background()
	})

	Describe("Calculate", func() {
		Context("successful calculation", func() {
			It("estimates the steel piece", func() {
				result, err := estimationSrv.Calculate(ctx, ds, steelRequest())

				Expect(err).To(BeNil())
				Expect(result).NotTo(BeNil())
				Expect(result.Material).To(Equal("Steel"))
				Expect(*result.Thickness).To(Equal(3.0))
				Expect(result.Time.CuttingHours).To(BeNumerically("~", 2.0, 1e-9))
				Expect(result.Time.PierceHours).To(BeNumerically("~", 0.12, 1e-9))
				Expect(result.Time.TotalHours).To(BeNumerically("~", 2.12, 1e-9))
				Expect(result.GasVolume).To(BeNumerically("~", 1.06, 1e-9))
				Expect(result.AreaM2).To(BeNumerically("~", 0.06, 1e-9))
				Expect(result.MaterialCost).To(BeNumerically("~", 0.15, 1e-9))
				Expect(result.GasCost).To(BeNumerically("~", 21.2, 1e-9))
				Expect(result.MachineCost).To(BeNumerically("~", 31.8, 1e-9))
				Expect(result.TotalCost).To(BeNumerically("~", 63.15, 1e-9))
			})

			It("uses the first row when several rows match", func() {
				req := steelRequest()
				req.Thickness = ""

				result, err := estimationSrv.Calculate(ctx, ds, req)

				Expect(err).To(BeNil())
				// first Steel row has a 500 mm/h rate
				Expect(result.Time.CuttingHours).To(BeNumerically("~", 2.0, 1e-9))
			})

			It("returns identical results for identical inputs", func() {
				first, err := estimationSrv.Calculate(ctx, ds, steelRequest())
				Expect(err).To(BeNil())
				second, err := estimationSrv.Calculate(ctx, ds, steelRequest())
				Expect(err).To(BeNil())

				Expect(*second).To(Equal(*first))
			})

			It("keeps the snapshot a run resolved against", func() {
				dir := GinkgoT().TempDir()
				first := filepath.Join(dir, "first.csv")
				second := filepath.Join(dir, "second.csv")
				Expect(os.WriteFile(first, []byte(referenceCSV), 0o600)).To(Succeed())
				Expect(os.WriteFile(second, []byte("Material,Espesor,CW ,1,2,Costo,Duracion\nSteel,3,250,0.01,0.02,2.5,10\n"), 0o600)).To(Succeed())

				store := dataset.NewStore(dataset.NewLoader())
				_, err := store.Load(first)
				Expect(err).ToNot(HaveOccurred())
				snapshot, err := store.Snapshot()
				Expect(err).ToNot(HaveOccurred())

				_, err = store.Load(second)
				Expect(err).ToNot(HaveOccurred())

				result, err := estimationSrv.Calculate(ctx, snapshot, steelRequest())
				Expect(err).To(BeNil())
				Expect(result.Time.CuttingHours).To(BeNumerically("~", 2.0, 1e-9))

				reloaded, err := store.Snapshot()
				Expect(err).ToNot(HaveOccurred())
				result, err = estimationSrv.Calculate(ctx, reloaded, steelRequest())
				Expect(err).To(BeNil())
				Expect(result.Time.CuttingHours).To(BeNumerically("~", 4.0, 1e-9))
			})
		})

		Context("failing calculation", func() {
			It("reports an unusable row when the cutting rate is zero", func() {
				req := steelRequest()
				req.Material = "Inox"
				req.Thickness = "1.5"

				result, err := estimationSrv.Calculate(ctx, ds, req)

				Expect(result).To(BeNil())
				var selErr *selection.ErrSelection
				Expect(errors.As(err, &selErr)).To(BeTrue())
				Expect(selErr.Kind).To(Equal(selection.UnusableRow))
			})

			It("reports no match for an unknown material", func() {
				req := steelRequest()
				req.Material = "Titanium"

				_, err := estimationSrv.Calculate(ctx, ds, req)

				var selErr *selection.ErrSelection
				Expect(errors.As(err, &selErr)).To(BeTrue())
				Expect(selErr.Kind).To(Equal(selection.NoMatch))
			})

			It("reports a missing pack duration", func() {
				req := steelRequest()
				req.Material = "Brass"
				req.Thickness = "2"

				_, err := estimationSrv.Calculate(ctx, ds, req)

				var inputErr *estimation.ErrInput
				Expect(errors.As(err, &inputErr)).To(BeTrue())
				Expect(inputErr.Kind).To(Equal(estimation.InputMissing))
				Expect(inputErr.Field).To(Equal(calculators.FieldPackDuration))
			})

			DescribeTable("rejects a bad user value",
				func(modify func(*service.JobRequest), kind estimation.InputErrorKind, field string) {
					req := steelRequest()
					modify(&req)

					result, err := estimationSrv.Calculate(ctx, ds, req)

					Expect(result).To(BeNil())
					var inputErr *estimation.ErrInput
					Expect(errors.As(err, &inputErr)).To(BeTrue())
					Expect(inputErr.Kind).To(Equal(kind))
					Expect(inputErr.Field).To(Equal(field))
				},
				Entry("missing perimeter", func(r *service.JobRequest) { r.Perimeter = "" }, estimation.InputMissing, calculators.ParamPerimeter),
				Entry("text perimeter", func(r *service.JobRequest) { r.Perimeter = "abc" }, estimation.InputNotNumeric, calculators.ParamPerimeter),
				Entry("zero perimeter", func(r *service.JobRequest) { r.Perimeter = "0" }, estimation.InputOutOfRange, calculators.ParamPerimeter),
				Entry("missing hole count", func(r *service.JobRequest) { r.HoleCount = "" }, estimation.InputMissing, calculators.ParamHoleCount),
				Entry("text hole count", func(r *service.JobRequest) { r.HoleCount = "abc" }, estimation.InputNotNumeric, calculators.ParamHoleCount),
				Entry("negative hole count", func(r *service.JobRequest) { r.HoleCount = "-1" }, estimation.InputOutOfRange, calculators.ParamHoleCount),
				Entry("missing width", func(r *service.JobRequest) { r.PieceWidth = "" }, estimation.InputMissing, calculators.ParamPieceWidth),
				Entry("text width", func(r *service.JobRequest) { r.PieceWidth = "abc" }, estimation.InputNotNumeric, calculators.ParamPieceWidth),
				Entry("zero width", func(r *service.JobRequest) { r.PieceWidth = "0" }, estimation.InputOutOfRange, calculators.ParamPieceWidth),
				Entry("missing length", func(r *service.JobRequest) { r.PieceLength = "" }, estimation.InputMissing, calculators.ParamPieceLength),
				Entry("text length", func(r *service.JobRequest) { r.PieceLength = "abc" }, estimation.InputNotNumeric, calculators.ParamPieceLength),
				Entry("negative length", func(r *service.JobRequest) { r.PieceLength = "-300" }, estimation.InputOutOfRange, calculators.ParamPieceLength),
				Entry("missing pack content", func(r *service.JobRequest) { r.PackNetContent = "" }, estimation.InputMissing, calculators.ParamPackNetContent),
				Entry("text pack content", func(r *service.JobRequest) { r.PackNetContent = "abc" }, estimation.InputNotNumeric, calculators.ParamPackNetContent),
				Entry("zero pack content", func(r *service.JobRequest) { r.PackNetContent = "0" }, estimation.InputOutOfRange, calculators.ParamPackNetContent),
				Entry("missing pack cost", func(r *service.JobRequest) { r.PackCost = "" }, estimation.InputMissing, calculators.ParamPackCost),
				Entry("text pack cost", func(r *service.JobRequest) { r.PackCost = "abc" }, estimation.InputNotNumeric, calculators.ParamPackCost),
				Entry("negative pack cost", func(r *service.JobRequest) { r.PackCost = "-20" }, estimation.InputOutOfRange, calculators.ParamPackCost),
				Entry("missing machine cost", func(r *service.JobRequest) { r.MachineHourCost = "" }, estimation.InputMissing, calculators.ParamMachineHourCost),
				Entry("text machine cost", func(r *service.JobRequest) { r.MachineHourCost = "abc" }, estimation.InputNotNumeric, calculators.ParamMachineHourCost),
				Entry("negative machine cost", func(r *service.JobRequest) { r.MachineHourCost = "-1" }, estimation.InputOutOfRange, calculators.ParamMachineHourCost),
				Entry("missing operator cost", func(r *service.JobRequest) { r.OperatorHourCost = "" }, estimation.InputMissing, calculators.ParamOperatorHourCost),
				Entry("text operator cost", func(r *service.JobRequest) { r.OperatorHourCost = "abc" }, estimation.InputNotNumeric, calculators.ParamOperatorHourCost),
				Entry("negative operator cost", func(r *service.JobRequest) { r.OperatorHourCost = "-10" }, estimation.InputOutOfRange, calculators.ParamOperatorHourCost),
				Entry("text thickness", func(r *service.JobRequest) { r.Thickness = "thick" }, estimation.InputNotNumeric, "thickness"),
				Entry("comma width", func(r *service.JobRequest) { r.PieceWidth = "200,5" }, estimation.InputNotNumeric, calculators.ParamPieceWidth),
				Entry("infinite perimeter", func(r *service.JobRequest) { r.Perimeter = "Inf" }, estimation.InputNotNumeric, calculators.ParamPerimeter),
				Entry("NaN pack cost", func(r *service.JobRequest) { r.PackCost = "NaN" }, estimation.InputNotNumeric, calculators.ParamPackCost),
			)

			It("requires a dataset", func() {
				_, err := estimationSrv.Calculate(ctx, nil, steelRequest())

				var noDataset *service.ErrNoDataset
				Expect(errors.As(err, &noDataset)).To(BeTrue())
			})

			It("stops on a cancelled context", func() {
				cancelled, cancel := context.WithCancel(ctx)
				cancel()

				_, err := estimationSrv.Calculate(cancelled, ds, steelRequest())

				Expect(err).To(MatchError(context.Canceled))
			})
		})
	})
})
